package classify

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"triage/internal/record"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestClassifier() *Classifier {
	return New(Options{FollowChains: true})
}

func TestClassify_Table(t *testing.T) {
	cases := []struct {
		name   string
		rec    record.Record
		strict bool
		want   record.Result
		ok     bool
	}{
		{
			name: "empty record yields nothing",
			rec:  record.Record{},
		},
		{
			name: "active without priority",
			rec:  record.Record{"status": "active"},
			want: record.Result{"active": true},
			ok:   true,
		},
		{
			name: "priority 6 is urgent",
			rec:  record.Record{"status": "active", "priority": 6.0},
			want: record.Result{"active": true, "urgent": true},
			ok:   true,
		},
		{
			name: "priority 5 boundary is normal not urgent",
			rec:  record.Record{"status": "active", "priority": 5.0},
			want: record.Result{"active": true, "normal": true},
			ok:   true,
		},
		{
			name: "priority 4 is normal",
			rec:  record.Record{"status": "active", "priority": 4.0},
			want: record.Result{"active": true, "normal": true},
			ok:   true,
		},
		{
			name: "priority 3 boundary is low not normal",
			rec:  record.Record{"status": "active", "priority": 3.0},
			want: record.Result{"active": true, "low": true},
			ok:   true,
		},
		{
			name: "priority 2 is low",
			rec:  record.Record{"status": "active", "priority": 2.0},
			want: record.Result{"active": true, "low": true},
			ok:   true,
		},
		{
			name: "inactive without strict",
			rec:  record.Record{"status": "inactive"},
			want: record.Result{"active": false},
			ok:   true,
		},
		{
			name:   "inactive with strict discards everything",
			rec:    record.Record{"status": "inactive", "priority": 9.0, "tags": []any{"critical"}},
			strict: true,
		},
		{
			name: "pending copies meta keys verbatim",
			rec:  record.Record{"status": "pending", "meta_x": "a", "meta_y": "b", "other": "ignored"},
			want: record.Result{"pending": true, "meta_x": "a", "meta_y": "b"},
			ok:   true,
		},
		{
			name: "missing status falls through to unknown",
			rec:  record.Record{"priority": 9.0},
			want: record.Result{"unknown": true},
			ok:   true,
		},
		{
			name: "unmatched status",
			rec:  record.Record{"status": "archived"},
			want: record.Result{"unknown": true},
			ok:   true,
		},
		{
			name: "flag tag short-circuits on first match",
			rec:  record.Record{"status": "active", "tags": []any{"low", "critical", "important"}},
			want: record.Result{"active": true, "flagged": true},
			ok:   true,
		},
		{
			name: "non-flag tags leave result unflagged",
			rec:  record.Record{"status": "active", "tags": []any{"low", "misc"}},
			want: record.Result{"active": true},
			ok:   true,
		},
		{
			name: "chain with done terminator stops after one step",
			rec:  record.Record{"status": "active", "next": map[string]any{"status": "done"}},
			want: record.Result{"active": true},
			ok:   true,
		},
		{
			name: "chain traversal does not leak into the result",
			rec: record.Record{
				"status": "pending",
				"meta_a": "x",
				"next": map[string]any{
					"status": "active",
					"next":   map[string]any{"status": "done"},
				},
			},
			want: record.Result{"pending": true, "meta_a": "x"},
			ok:   true,
		},
	}

	c := newTestClassifier()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := c.Classify(tc.rec, tc.strict)
			require.Equal(t, tc.ok, ok)
			if !tc.ok {
				assert.Nil(t, got)
				return
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassify_DoesNotMutateInput(t *testing.T) {
	rec := record.Record{
		"status": "pending",
		"meta_x": "a",
		"tags":   []any{"critical"},
		"next":   map[string]any{"status": "active"},
	}
	want := record.Record{
		"status": "pending",
		"meta_x": "a",
		"tags":   []any{"critical"},
		"next":   map[string]any{"status": "active"},
	}

	_, ok := newTestClassifier().Classify(rec, false)
	require.True(t, ok)
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("input record mutated (-want +got):\n%s", diff)
	}
}

func TestClassify_ChainDisabled(t *testing.T) {
	// With FollowChains off the result is identical; the walk is only
	// observable through termination.
	c := New(Options{FollowChains: false})
	got, ok := c.Classify(record.Record{"status": "active", "next": map[string]any{"status": "x"}}, false)
	require.True(t, ok)
	assert.Equal(t, record.Result{"active": true}, got)
}

func TestValidateBatch(t *testing.T) {
	c := newTestClassifier()
	assert.True(t, c.ValidateBatch([]any{map[string]any{"status": "active"}, map[string]any{}}))
	assert.True(t, c.ValidateBatch(nil))
	assert.False(t, c.ValidateBatch([]any{map[string]any{}, "not a record"}))
	assert.False(t, c.ValidateBatch([]any{nil}))
}

package repository

import (
	"bytes"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/phoneix12356/RenuHealthCare/internal/models"
)

func TestAppendWeekUpdateOmitsEmptyCategories(t *testing.T) {
	tests := []struct {
		name    string
		delta   WeekAppend
		want    []string
		notWant []string
	}{
		{
			name: "images only",
			delta: WeekAppend{
				Week:   2,
				Images: []models.FileRef{{URL: "https://cdn/img1.png", PublicID: "img1"}},
			},
			want:    []string{"images"},
			notWant: []string{"pdf", "links", "notes"},
		},
		{
			name: "pdf and links",
			delta: WeekAppend{
				Week:  3,
				PDFs:  []models.FileRef{{URL: "https://cdn/report.pdf", PublicID: "report"}},
				Links: []string{"https://github.com/example/work"},
			},
			want:    []string{"pdf", "links"},
			notWant: []string{"images", "notes"},
		},
		{
			name:    "week only",
			delta:   WeekAppend{Week: 1},
			notWant: []string{"images", "pdf", "links", "notes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update := appendWeekUpdate(tt.delta)
			push, ok := update["$push"].(bson.M)
			if !ok {
				t.Fatalf("update has no $push document: %v", update)
			}
			if push["completedWeek"] != tt.delta.Week {
				t.Errorf("completedWeek = %v, want %d", push["completedWeek"], tt.delta.Week)
			}
			for _, key := range tt.want {
				each, ok := push[key].(bson.M)
				if !ok {
					t.Errorf("$push missing %q", key)
					continue
				}
				if each["$each"] == nil {
					t.Errorf("$push %q has nil $each", key)
				}
			}
			for _, key := range tt.notWant {
				if _, ok := push[key]; ok {
					t.Errorf("$push carries empty category %q", key)
				}
			}
		})
	}
}

// The server rejects a $push whose $each marshals to null, so the
// update document must never contain one.
func TestAppendWeekUpdateMarshalsWithoutNull(t *testing.T) {
	update := appendWeekUpdate(WeekAppend{
		Week:   2,
		Images: []models.FileRef{{URL: "https://cdn/img1.png", PublicID: "img1"}},
	})
	raw, err := bson.Marshal(update)
	if err != nil {
		t.Fatalf("marshal update: %v", err)
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal update: %v", err)
	}
	if bytes.Contains(raw, []byte("$each")) {
		for _, elem := range doc {
			push, ok := elem.Value.(bson.D)
			if !ok {
				continue
			}
			for _, field := range push {
				inner, ok := field.Value.(bson.D)
				if !ok {
					continue
				}
				for _, e := range inner {
					if e.Key == "$each" && e.Value == nil {
						t.Errorf("%q marshals $each to null", field.Key)
					}
				}
			}
		}
	}
}

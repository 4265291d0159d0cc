package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pairui/mission-board/internal/core/ports"
)

func TestListQuery_SearchEscapesMetacharacters(t *testing.T) {
	cases := []struct {
		search string
		want   string
	}{
		{"table", "table"},
		{"a.c", `a\.c`},
		{"(", `\(`},
		{"c++ grid", `c\+\+ grid`},
		{"50% off[beta]", `50% off\[beta\]`},
	}

	for _, tc := range cases {
		query := listQuery(ports.ListMissionsFilter{Search: tc.search})

		re, ok := query["name"].(bson.M)["$regex"].(primitive.Regex)
		if !ok {
			t.Fatalf("%q: name filter is not a regex: %+v", tc.search, query["name"])
		}
		if re.Pattern != tc.want {
			t.Errorf("%q: expected pattern %q, got %q", tc.search, tc.want, re.Pattern)
		}
		if re.Options != "i" {
			t.Errorf("%q: expected case-insensitive match, got options %q", tc.search, re.Options)
		}
	}
}

func TestListQuery_OmitsEmptyFilters(t *testing.T) {
	if query := listQuery(ports.ListMissionsFilter{}); len(query) != 0 {
		t.Fatalf("empty filter must produce an empty query, got %+v", query)
	}

	query := listQuery(ports.ListMissionsFilter{
		Status:      "open",
		UILibrary:   "react",
		CreatorRole: "developer",
		CreatorID:   "user_1",
		ApplicantID: "user_2",
	})
	want := map[string]string{
		"status":                    "open",
		"ui_library":                "react",
		"creator_role":              "developer",
		"creator_id":                "user_1",
		"applications.applicant_id": "user_2",
	}
	for key, value := range want {
		if query[key] != value {
			t.Errorf("expected %s=%q, got %v", key, value, query[key])
		}
	}
	if len(query) != len(want) {
		t.Errorf("unexpected extra filters: %+v", query)
	}
}

package service

import (
	"net/url"
	"reflect"
	"testing"
)

func TestMembersFromFormSkipsGaps(t *testing.T) {
	form := url.Values{}
	form.Set("member_0_name", "A")
	form.Set("member_0_title", "CEO")
	form.Set("member_2_name", "B")
	form.Set("member_2_title", "CTO")

	members := membersFromForm(form)
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if members[0].Name != "A" || members[1].Name != "B" {
		t.Fatalf("expected ascending-index order [A B], got [%s %s]", members[0].Name, members[1].Name)
	}
}

func TestMembersFromFormDropsBlankNames(t *testing.T) {
	form := url.Values{}
	form.Set("member_0_name", "")
	form.Set("member_0_title", "Ghost")
	form.Set("member_1_name", "X")

	members := membersFromForm(form)
	if len(members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(members))
	}
	if members[0].Name != "X" {
		t.Fatalf("expected X, got %s", members[0].Name)
	}
}

func TestMembersFromFormTrimsAndOmitsSocials(t *testing.T) {
	form := url.Values{}
	form.Set("member_0_name", "  Dr. Chen  ")
	form.Set("member_0_bio", " Robotics lead ")
	form.Set("member_0_linkedin", "")

	members := membersFromForm(form)
	if len(members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(members))
	}
	if members[0].Name != "Dr. Chen" {
		t.Fatalf("expected trimmed name, got %q", members[0].Name)
	}
	if members[0].Bio != "Robotics lead" {
		t.Fatalf("expected trimmed bio, got %q", members[0].Bio)
	}

	encoded := encodeMembers(members)
	entry := encoded[0].(map[string]any)
	if _, ok := entry["linkedin"]; ok {
		t.Fatal("expected blank linkedin to be omitted")
	}
}

func TestItemsFromFormUsesContiguousCount(t *testing.T) {
	form := url.Values{}
	form.Set("item_0_title", "First")
	form.Set("item_0_icon", "heart")
	form.Set("item_2_title", "Orphan") // counted, but index 1 wins the slot scan

	items := itemsFromForm(form)
	if len(items) != 2 {
		t.Fatalf("expected count-based reconstruction of 2 items, got %d", len(items))
	}
	if items[0].Title != "First" {
		t.Fatalf("expected First at index 0, got %q", items[0].Title)
	}
	if items[1].Title != "" {
		t.Fatalf("expected empty slot at index 1, got %q", items[1].Title)
	}
}

func TestSliderImagesFromFormCompacts(t *testing.T) {
	form := url.Values{}
	form.Set("slider_image_0", "https://cdn.example.com/a.png")
	form.Set("slider_image_1", "   ")
	form.Set("slider_image_3", "https://cdn.example.com/b.png")
	form.Set("slider_image_12", "https://cdn.example.com/out-of-range.png")

	urls := sliderImagesFromForm(form)
	want := []string{"https://cdn.example.com/a.png", "https://cdn.example.com/b.png"}
	if !reflect.DeepEqual(urls, want) {
		t.Fatalf("expected %v, got %v", want, urls)
	}
}

func TestApplyPageFormTeam(t *testing.T) {
	existing := map[string]any{
		"header_title": "Old title",
		"legacy_note":  "untouched",
	}
	form := url.Values{}
	form.Set("header_title", "Our Team")
	form.Set("header_description", "The people behind the robot")
	form.Set("member_0_name", "A")

	doc := ApplyPageForm(existing, form, PageTeam)

	if doc["header_title"] != "Our Team" {
		t.Fatalf("expected header replaced, got %v", doc["header_title"])
	}
	if doc["legacy_note"] != "untouched" {
		t.Fatal("expected unrelated keys to be preserved")
	}
	members, ok := doc["members"].([]any)
	if !ok || len(members) != 1 {
		t.Fatalf("expected 1 encoded member, got %#v", doc["members"])
	}
	if existing["header_title"] != "Old title" {
		t.Fatal("expected input document to stay unmodified")
	}
}

func TestApplyPageFormScalarsPartialUpdate(t *testing.T) {
	existing := map[string]any{
		"title":    "Keep or replace",
		"subtitle": "Keep me",
	}
	form := url.Values{}
	form.Set("title", "Replaced")

	doc := ApplyPageForm(existing, form, PageIndex)

	if doc["title"] != "Replaced" {
		t.Fatalf("expected submitted scalar replaced, got %v", doc["title"])
	}
	if doc["subtitle"] != "Keep me" {
		t.Fatalf("expected unsubmitted scalar untouched, got %v", doc["subtitle"])
	}
}

func TestApplyPageFormGroupsOnlyWhenPresent(t *testing.T) {
	existing := map[string]any{"title": "No groups here"}
	form := url.Values{}
	form.Set("slider_image_0", "https://cdn.example.com/a.png")
	form.Set("item_0_title", "Item")

	doc := ApplyPageForm(existing, form, PageProblem)

	if _, ok := doc["slider_images"]; ok {
		t.Fatal("expected slider_images to stay absent when not in stored doc")
	}
	if _, ok := doc["items"]; ok {
		t.Fatal("expected items to stay absent when not in stored doc")
	}

	existing["slider_images"] = []any{"old"}
	existing["items"] = []any{}
	doc = ApplyPageForm(existing, form, PageProblem)

	images, ok := doc["slider_images"].([]any)
	if !ok || len(images) != 1 || images[0] != "https://cdn.example.com/a.png" {
		t.Fatalf("expected replaced slider images, got %#v", doc["slider_images"])
	}
	items, ok := doc["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected rebuilt items, got %#v", doc["items"])
	}
}

func TestDecodeTeamPageToleratesBadShapes(t *testing.T) {
	doc := map[string]any{
		"header_title": "Team",
		"members": []any{
			map[string]any{"name": "A", "title": "CEO"},
			"not-a-member",
			map[string]any{"name": "B", "linkedin": "https://linkedin.example/b"},
		},
	}

	page := DecodeTeamPage(doc)
	if page.HeaderTitle != "Team" {
		t.Fatalf("expected header title, got %q", page.HeaderTitle)
	}
	if len(page.Members) != 2 {
		t.Fatalf("expected 2 decodable members, got %d", len(page.Members))
	}
	if page.Members[1].LinkedIn != "https://linkedin.example/b" {
		t.Fatalf("expected linkedin decoded, got %q", page.Members[1].LinkedIn)
	}
}

package service

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// The admin edit form flattens repeating structures into indexed field names
// (member_0_name, item_0_title, slider_image_0) because the transport is a
// plain form post. Two discovery styles exist and are kept deliberately
// separate: team members are found by scanning the submitted index set so
// client-side row deletion may leave gaps, while content-page items are
// rebuilt from a contiguous 0..count-1 range.

const sliderImageSlots = 10

// ApplyPageForm folds a submitted admin form into an existing page document
// and returns the document ready for a full-replace save. Scalars are copied
// only when submitted; each repeating group present in the stored document is
// replaced wholesale.
func ApplyPageForm(existing map[string]any, form url.Values, pageName string) map[string]any {
	doc := make(map[string]any, len(existing)+4)
	for key, value := range existing {
		doc[key] = value
	}

	if pageName == PageTeam {
		doc["members"] = encodeMembers(membersFromForm(form))
		doc["header_title"] = form.Get("header_title")
		doc["header_description"] = form.Get("header_description")
		return doc
	}

	if _, ok := doc["slider_images"]; ok {
		doc["slider_images"] = encodeStrings(sliderImagesFromForm(form))
	}

	for _, key := range []string{"title", "subtitle", "description", "footer_note", "financing"} {
		if form.Has(key) {
			doc[key] = form.Get(key)
		}
	}

	if _, ok := doc["items"]; ok {
		doc["items"] = encodeItems(itemsFromForm(form))
	}

	return doc
}

// membersFromForm rebuilds the team member list. Indices are discovered from
// the member_<i>_name keys actually present, sorted ascending; a row whose
// name is blank counts as deleted.
func membersFromForm(form url.Values) []TeamMember {
	indexSet := map[int]struct{}{}
	for key := range form {
		if !strings.HasPrefix(key, "member_") || !strings.HasSuffix(key, "_name") {
			continue
		}
		middle := strings.TrimSuffix(strings.TrimPrefix(key, "member_"), "_name")
		index, err := strconv.Atoi(middle)
		if err != nil {
			continue
		}
		indexSet[index] = struct{}{}
	}

	indices := make([]int, 0, len(indexSet))
	for index := range indexSet {
		indices = append(indices, index)
	}
	sort.Ints(indices)

	var members []TeamMember
	for _, i := range indices {
		name := strings.TrimSpace(form.Get(memberField(i, "name")))
		if name == "" {
			continue
		}
		members = append(members, TeamMember{
			Name:     name,
			Title:    strings.TrimSpace(form.Get(memberField(i, "title"))),
			Bio:      strings.TrimSpace(form.Get(memberField(i, "bio"))),
			ImageURL: strings.TrimSpace(form.Get(memberField(i, "image_url"))),
			LinkedIn: strings.TrimSpace(form.Get(memberField(i, "linkedin"))),
			Twitter:  strings.TrimSpace(form.Get(memberField(i, "twitter"))),
		})
	}
	return members
}

func memberField(index int, suffix string) string {
	return "member_" + strconv.Itoa(index) + "_" + suffix
}

// itemsFromForm rebuilds the item list from a contiguous index range: the
// count is the number of item_<i>_title keys submitted, and indices run
// 0..count-1. Unlike members, gaps are not tolerated.
func itemsFromForm(form url.Values) []PageItem {
	count := 0
	for key := range form {
		if strings.HasPrefix(key, "item_") && strings.HasSuffix(key, "_title") {
			count++
		}
	}

	items := make([]PageItem, 0, count)
	for i := 0; i < count; i++ {
		prefix := "item_" + strconv.Itoa(i) + "_"
		items = append(items, PageItem{
			Icon:        form.Get(prefix + "icon"),
			Title:       form.Get(prefix + "title"),
			Description: form.Get(prefix + "description"),
		})
	}
	return items
}

// sliderImagesFromForm scans the fixed slider_image_0..9 slots and compacts
// the non-blank URLs in order.
func sliderImagesFromForm(form url.Values) []string {
	var urls []string
	for i := 0; i < sliderImageSlots; i++ {
		url := strings.TrimSpace(form.Get("slider_image_" + strconv.Itoa(i)))
		if url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}

func encodeMembers(members []TeamMember) []any {
	encoded := make([]any, 0, len(members))
	for _, m := range members {
		entry := map[string]any{
			"name":      m.Name,
			"title":     m.Title,
			"bio":       m.Bio,
			"image_url": m.ImageURL,
		}
		if m.LinkedIn != "" {
			entry["linkedin"] = m.LinkedIn
		}
		if m.Twitter != "" {
			entry["twitter"] = m.Twitter
		}
		encoded = append(encoded, entry)
	}
	return encoded
}

func encodeItems(items []PageItem) []any {
	encoded := make([]any, 0, len(items))
	for _, item := range items {
		encoded = append(encoded, map[string]any{
			"icon":        item.Icon,
			"title":       item.Title,
			"description": item.Description,
		})
	}
	return encoded
}

func encodeStrings(values []string) []any {
	encoded := make([]any, 0, len(values))
	for _, v := range values {
		encoded = append(encoded, v)
	}
	return encoded
}

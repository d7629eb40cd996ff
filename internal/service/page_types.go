package service

import "strings"

// Page names with a known shape. Everything else renders as a content page.
const (
	PageTeam        = "team"
	PageIndex       = "index"
	PageProblem     = "problem"
	PageSolution    = "solution"
	PageMethodology = "methodology"
)

// TeamMember is one entry on the team page.
type TeamMember struct {
	Name     string
	Title    string
	Bio      string
	ImageURL string
	LinkedIn string
	Twitter  string
}

// TeamPage is the typed shape of the team page document.
type TeamPage struct {
	HeaderTitle       string
	HeaderDescription string
	Members           []TeamMember
}

// PageItem is one icon/title/description row of a content page.
type PageItem struct {
	Icon        string
	Title       string
	Description string
}

// ContentPage is the typed shape shared by the non-team pages. Absent fields
// mean "not editable on this page", not "empty".
type ContentPage struct {
	Title        string
	Subtitle     string
	Description  string
	FooterNote   string
	Financing    string
	SliderImages []string
	Items        []PageItem
}

// DecodeTeamPage reads the team shape out of a stored document, tolerating
// missing or oddly-typed fields.
func DecodeTeamPage(doc map[string]any) TeamPage {
	page := TeamPage{
		HeaderTitle:       asString(doc["header_title"]),
		HeaderDescription: asString(doc["header_description"]),
	}

	rawMembers, _ := doc["members"].([]any)
	for _, raw := range rawMembers {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		page.Members = append(page.Members, TeamMember{
			Name:     asString(entry["name"]),
			Title:    asString(entry["title"]),
			Bio:      asString(entry["bio"]),
			ImageURL: asString(entry["image_url"]),
			LinkedIn: asString(entry["linkedin"]),
			Twitter:  asString(entry["twitter"]),
		})
	}
	return page
}

// DecodeContentPage reads the content-page shape out of a stored document.
func DecodeContentPage(doc map[string]any) ContentPage {
	page := ContentPage{
		Title:       asString(doc["title"]),
		Subtitle:    asString(doc["subtitle"]),
		Description: asString(doc["description"]),
		FooterNote:  asString(doc["footer_note"]),
		Financing:   asString(doc["financing"]),
	}

	rawImages, _ := doc["slider_images"].([]any)
	for _, raw := range rawImages {
		if url := asString(raw); strings.TrimSpace(url) != "" {
			page.SliderImages = append(page.SliderImages, url)
		}
	}

	rawItems, _ := doc["items"].([]any)
	for _, raw := range rawItems {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		page.Items = append(page.Items, PageItem{
			Icon:        asString(entry["icon"]),
			Title:       asString(entry["title"]),
			Description: asString(entry["description"]),
		})
	}
	return page
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// Package profile holds the developer's identity, contact details and bio.
package profile

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// ContactOption is one entry of the contact dropdown.
type ContactOption struct {
	Label    string
	Display  string
	Href     string
	External bool
}

// Profile is everything the header, bio and footer render.
type Profile struct {
	FirstName  string
	LastName   string
	FullName   string
	Role       string
	Experience string

	Email    string
	Phone    string // E.164 without the plus sign
	PhoneFmt string

	Resume   string // relative asset path
	LinkedIn string
	GitHub   string

	About           template.HTML
	AboutText       string
	CoreExpertise   []string
	Specializations []string
	FooterCredit    string
	FooterTagline   string
	DetailTeaser    string
}

// Default returns the site owner's profile with the bio rendered to HTML.
func Default() (*Profile, error) {
	about, err := RenderMarkdown(AboutMe)
	if err != nil {
		return nil, fmt.Errorf("render about: %w", err)
	}
	return &Profile{
		FirstName:       "SAAD",
		LastName:        "KHALIL",
		FullName:        "Muhammad Saad",
		Role:            "React Native Engineer",
		Experience:      "2.5+ Years Experience",
		Email:           "saadkhalil9999@gmail.com",
		Phone:           "923229953346",
		PhoneFmt:        "+92 322 9953346",
		Resume:          "saadKhalil.pdf",
		LinkedIn:        "https://www.linkedin.com/in/saad-khalil-0912b2232/",
		GitHub:          "https://github.com/saadkhalil01",
		About:           about,
		AboutText:       AboutMe,
		CoreExpertise:   CoreExpertise,
		Specializations: Specializations,
		FooterCredit:    FooterCredit,
		FooterTagline:   FooterTagline,
		DetailTeaser:    DetailTeaser,
	}, nil
}

// Contacts lists the contact dropdown entries in display order.
func (p *Profile) Contacts() []ContactOption {
	return []ContactOption{
		{Label: "Email", Display: p.Email, Href: "mailto:" + p.Email},
		{Label: "WhatsApp", Display: p.PhoneFmt, Href: "https://wa.me/" + p.Phone, External: true},
		{Label: "Call", Display: p.PhoneFmt, Href: "tel:+" + p.Phone},
	}
}

var (
	md     = goldmark.New()
	policy = bluemonday.UGCPolicy()
)

// RenderMarkdown converts markdown to sanitised HTML.
func RenderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes())), nil
}

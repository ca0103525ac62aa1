// Package preview renders the branded contact card shown while a card is
// being prepared. Rendering is a pure function of its Input.
package preview

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSkin = errors.New("unknown preview skin")

type Skin string

const (
	SkinAndroid Skin = "android"
	SkinIOS     Skin = "ios"
)

// ParseSkin accepts "android" or "ios" in any case.
func ParseSkin(s string) (Skin, error) {
	switch Skin(strings.ToLower(strings.TrimSpace(s))) {
	case SkinAndroid:
		return SkinAndroid, nil
	case SkinIOS:
		return SkinIOS, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownSkin)
	}
}

// SkinForDevice maps a device OS ("android", "ios", anything else) to a skin.
func SkinForDevice(os string) Skin {
	if os == string(SkinIOS) {
		return SkinIOS
	}
	return SkinAndroid
}

// FieldVisibility decides which contact fields appear on the card. It only
// hides nodes and never changes the contact itself.
type FieldVisibility struct {
	Name        bool `json:"name"`
	PhoneNumber bool `json:"phone_number"`
	Email       bool `json:"email"`
	Campaign    bool `json:"campaign"`
	Logo        bool `json:"logo"`
}

func AllVisible() FieldVisibility {
	return FieldVisibility{Name: true, PhoneNumber: true, Email: true, Campaign: true, Logo: true}
}

// Toggle flips the named field. Unknown names leave v unchanged.
func (v FieldVisibility) Toggle(field string) FieldVisibility {
	switch field {
	case FieldName:
		v.Name = !v.Name
	case FieldPhoneNumber:
		v.PhoneNumber = !v.PhoneNumber
	case FieldEmail:
		v.Email = !v.Email
	case FieldCampaign:
		v.Campaign = !v.Campaign
	case FieldLogo:
		v.Logo = !v.Logo
	}
	return v
}

const (
	FieldName        = "name"
	FieldPhoneNumber = "phone_number"
	FieldEmail       = "email"
	FieldCampaign    = "campaign"
	FieldLogo        = "logo"
)

type Contact struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email,omitempty"`
}

type Campaign struct {
	ID      int64  `json:"campaign_id"`
	Name    string `json:"campaign_name"`
	BrandID int64  `json:"brand_id"`
}

type Input struct {
	Visibility  FieldVisibility `json:"visibility"`
	Contact     Contact         `json:"contact"`
	LogoDataURL string          `json:"logo_data_url,omitempty"`
	Campaign    *Campaign       `json:"campaign,omitempty"`
	Skin        Skin            `json:"skin"`
}

// Node is one element of the rendered card.
type Node struct {
	Tag      string `json:"tag"`
	Class    string `json:"class,omitempty"`
	Field    string `json:"field,omitempty"`
	Text     string `json:"text,omitempty"`
	Src      string `json:"src,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// Render builds the card tree for in. Identical inputs always produce
// identical trees.
func Render(in Input) (Node, error) {
	var chrome []Node
	switch in.Skin {
	case SkinAndroid:
		chrome = []Node{
			{Tag: "div", Class: "status-bar status-bar--android", Text: "12:30"},
			{Tag: "div", Class: "app-bar", Children: []Node{
				{Tag: "span", Class: "app-bar__title", Text: "Contact"},
			}},
		}
	case SkinIOS:
		chrome = []Node{
			{Tag: "div", Class: "status-bar status-bar--ios", Text: "9:41"},
			{Tag: "div", Class: "nav-bar", Children: []Node{
				{Tag: "span", Class: "nav-bar__back", Text: "Contacts"},
				{Tag: "span", Class: "nav-bar__action", Text: "Edit"},
			}},
		}
	default:
		return Node{}, fmt.Errorf("%q: %w", in.Skin, ErrUnknownSkin)
	}

	skin := string(in.Skin)
	body := []Node{avatar(in, skin)}
	if in.Visibility.Name && in.Contact.Name != "" {
		body = append(body, Node{Tag: "h2", Class: "contact-name contact-name--" + skin, Field: FieldName, Text: in.Contact.Name})
	}

	var fields []Node
	if in.Visibility.PhoneNumber && in.Contact.PhoneNumber != "" {
		fields = append(fields, field(FieldPhoneNumber, labelFor(in.Skin, FieldPhoneNumber), in.Contact.PhoneNumber))
	}
	if in.Visibility.Email && in.Contact.Email != "" {
		fields = append(fields, field(FieldEmail, labelFor(in.Skin, FieldEmail), in.Contact.Email))
	}
	if in.Visibility.Campaign && in.Campaign != nil && in.Campaign.Name != "" {
		fields = append(fields, field(FieldCampaign, "Campaign", in.Campaign.Name))
	}
	if len(fields) > 0 {
		body = append(body, Node{Tag: "div", Class: "fields fields--" + skin, Children: fields})
	}

	return Node{
		Tag:      "div",
		Class:    "card card--" + skin,
		Children: append(chrome, Node{Tag: "div", Class: "card__body", Children: body}),
	}, nil
}

func avatar(in Input, skin string) Node {
	if in.Visibility.Logo && in.LogoDataURL != "" {
		return Node{Tag: "img", Class: "avatar avatar--" + skin, Field: FieldLogo, Src: in.LogoDataURL, Text: "Logo"}
	}
	initials := "?"
	if in.Visibility.Name {
		if i := Initials(in.Contact.Name); i != "" {
			initials = i
		}
	}
	return Node{Tag: "div", Class: "avatar avatar--initials avatar--" + skin, Text: initials}
}

func field(name, label, value string) Node {
	return Node{Tag: "div", Class: "field", Field: name, Children: []Node{
		{Tag: "span", Class: "field__label", Text: label},
		{Tag: "span", Class: "field__value", Text: value},
	}}
}

func labelFor(skin Skin, name string) string {
	switch {
	case name == FieldPhoneNumber && skin == SkinIOS:
		return "mobile"
	case name == FieldPhoneNumber:
		return "Phone"
	case skin == SkinIOS:
		return "email"
	default:
		return "Email"
	}
}

// Initials returns up to two upper-case initials of name.
func Initials(name string) string {
	var out []rune
	for _, part := range strings.Fields(name) {
		out = append(out, []rune(strings.ToUpper(part))[0])
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

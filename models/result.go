package models

// Stylist is the stylist selected for a processed style image
type Stylist struct {
	Name string `json:"name" db:"stylist_name"`
}

// Coupon is the coupon selected for a processed style image
type Coupon struct {
	Name string `json:"name" db:"coupon_name"`
}

// StyleTemplate holds the posting template chosen for a style
type StyleTemplate struct {
	Comment string `json:"comment" db:"comment"`
	Title   string `json:"title" db:"title"`
	Menu    string `json:"menu" db:"menu"`
	Hashtag string `json:"hashtag" db:"hashtag"`
}

// AttributeAnalysis holds the attributes detected from a style image
type AttributeAnalysis struct {
	Sex    string `json:"sex" db:"sex"`
	Length string `json:"length" db:"length"`
}

// ProcessResult is one unit of analysis output, rendered as one spreadsheet row
type ProcessResult struct {
	Stylist    Stylist           `json:"selected_stylist"`
	Coupon     Coupon            `json:"selected_coupon"`
	Template   StyleTemplate     `json:"selected_template"`
	Attributes AttributeAnalysis `json:"attribute_analysis"`
	Image      string            `json:"image_name" db:"image_name"`
}

// StylistName returns the selected stylist's display name
func (p *ProcessResult) StylistName() string { return p.Stylist.Name }

// CouponName returns the selected coupon's display name
func (p *ProcessResult) CouponName() string { return p.Coupon.Name }

// Comment returns the template's comment text
func (p *ProcessResult) Comment() string { return p.Template.Comment }

// Title returns the template's style title
func (p *ProcessResult) Title() string { return p.Template.Title }

// Sex returns the detected sex attribute
func (p *ProcessResult) Sex() string { return p.Attributes.Sex }

// Length returns the detected hair length attribute
func (p *ProcessResult) Length() string { return p.Attributes.Length }

// Menu returns the template's style menu
func (p *ProcessResult) Menu() string { return p.Template.Menu }

// Hashtag returns the template's hashtag text
func (p *ProcessResult) Hashtag() string { return p.Template.Hashtag }

// ImageName returns the source image file name
func (p *ProcessResult) ImageName() string { return p.Image }

package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// SocialFormat is a fixed crop target for a social platform
type SocialFormat struct {
	Name        string
	Width       int
	Height      int
	AspectRatio string
}

// DefaultSocialFormat is selected before the user picks one
const DefaultSocialFormat = "Instagram Square (1:1)"

var socialFormats = []SocialFormat{
	{Name: "Instagram Square (1:1)", Width: 1080, Height: 1080, AspectRatio: "1:1"},
	{Name: "Instagram Portrait (4:5)", Width: 1080, Height: 1350, AspectRatio: "4:5"},
	{Name: "Twitter Post (16:9)", Width: 1200, Height: 675, AspectRatio: "16:9"},
	{Name: "Twitter Header (3:1)", Width: 1500, Height: 500, AspectRatio: "3:1"},
	{Name: "Facebook Cover (205:78)", Width: 820, Height: 312, AspectRatio: "205:78"},
}

// SocialFormats returns the catalog in display order.
func SocialFormats() []SocialFormat {
	formats := make([]SocialFormat, len(socialFormats))
	copy(formats, socialFormats)
	return formats
}

// LookupSocialFormat finds a catalog entry by its exact name.
func LookupSocialFormat(name string) (SocialFormat, error) {
	for _, format := range socialFormats {
		if format.Name == name {
			return format, nil
		}
	}
	return SocialFormat{}, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
}

// Transform derives the rendition parameters for this format.
func (f SocialFormat) Transform() Transform {
	return Transform{
		AssetType:   AssetTypeImage,
		Crop:        "fill",
		Width:       f.Width,
		Height:      f.Height,
		AspectRatio: f.AspectRatio,
		Gravity:     "auto",
		Format:      "png",
	}
}

var whitespace = regexp.MustCompile(`\s+`)

// FileName is the download name, "Twitter Post (16:9)" -> "twitter_post_(16:9).png".
func (f SocialFormat) FileName() string {
	return strings.ToLower(whitespace.ReplaceAllString(f.Name, "_")) + ".png"
}

package cloudinary

import (
	"clipshare/internal/core/domain"
	"strconv"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/asset"
)

const defaultDeliveryBaseURL = "https://res.cloudinary.com"

// URLBuilder builds delivery URLs. It never performs I/O, so the same publicId and
// transform always yield the same URL.
type URLBuilder struct {
	deliveryBaseURL string
	cld             *cloudinary.Cloudinary
}

// NewURLBuilder returns URLBuilder. Delivery needs only the cloud name.
func NewURLBuilder(deliveryBaseURL, cloudName string) URLBuilder {
	cld, err := cloudinary.NewFromParams(cloudName, "", "")
	if err != nil {
		return URLBuilder{}
	}
	return newURLBuilder(deliveryBaseURL, cld)
}

func newURLBuilder(deliveryBaseURL string, cld *cloudinary.Cloudinary) URLBuilder {
	cld.Config.URL.Secure = true
	cld.Config.URL.ForceVersion = false
	cld.Config.URL.Analytics = false
	return URLBuilder{
		deliveryBaseURL: strings.TrimRight(deliveryBaseURL, "/"),
		cld:             cld,
	}
}

// RenditionURL returns the delivery URL of publicID rendered with transform,
// or "" when no URL can be built.
func (b URLBuilder) RenditionURL(publicID string, transform domain.Transform) string {
	if b.cld == nil {
		return ""
	}

	name := publicID
	if transform.Format != "" {
		name += "." + transform.Format
	}

	var (
		a   *asset.Asset
		err error
	)
	if transform.AssetType == domain.AssetTypeVideo {
		a, err = b.cld.Video(name)
	} else {
		a, err = b.cld.Image(name)
	}
	if err != nil {
		return ""
	}
	a.Transformation = strings.Join(transformationSegments(transform), "/")

	u, err := a.String()
	if err != nil {
		return ""
	}
	if b.deliveryBaseURL != "" && b.deliveryBaseURL != defaultDeliveryBaseURL {
		u = b.deliveryBaseURL + strings.TrimPrefix(u, defaultDeliveryBaseURL)
	}
	return u
}

// transformationSegments orders the components as geometry, quality, then effect.
func transformationSegments(t domain.Transform) []string {
	var segments []string

	var geometry []string
	if t.AspectRatio != "" {
		geometry = append(geometry, "ar_"+t.AspectRatio)
	}
	if t.Crop != "" {
		geometry = append(geometry, "c_"+t.Crop)
	}
	if t.Gravity != "" {
		geometry = append(geometry, "g_"+t.Gravity)
	}
	if t.Height > 0 {
		geometry = append(geometry, "h_"+strconv.Itoa(t.Height))
	}
	if t.Width > 0 {
		geometry = append(geometry, "w_"+strconv.Itoa(t.Width))
	}
	if len(geometry) > 0 {
		segments = append(segments, strings.Join(geometry, ","))
	}

	if t.Quality != "" {
		segments = append(segments, "q_"+t.Quality)
	}
	if t.Preview != nil {
		segments = append(segments, t.Preview.Directive())
	}
	return segments
}

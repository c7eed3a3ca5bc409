package tools

import (
	"bytes"
	"image"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/webp"
)

// UploadMIME is the content type of every prepared upload; PrepareUpload
// always re-encodes to JPEG.
const UploadMIME = "image/jpeg"

const (
	maxUploadEdge = 2048
	jpegQuality   = 85
)

func SniffMIME(data []byte) string {
	return http.DetectContentType(data)
}

// DecodeImage decodes the formats the stdlib and imaging register, plus
// webp which needs its own decoder.
func DecodeImage(data []byte) (image.Image, error) {
	if strings.HasPrefix(SniffMIME(data), "image/webp") {
		return webp.Decode(bytes.NewReader(data))
	}
	return imaging.Decode(bytes.NewReader(data))
}

// PrepareUpload validates the uploaded bytes decode as an image, downscales
// oversized samples and re-encodes as JPEG for the model gateway.
func PrepareUpload(data []byte) ([]byte, error) {
	img, err := DecodeImage(data)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	if bounds.Dx() > maxUploadEdge || bounds.Dy() > maxUploadEdge {
		img = imaging.Fit(img, maxUploadEdge, maxUploadEdge, imaging.Lanczos)
	}
	buf := new(bytes.Buffer)
	err = imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

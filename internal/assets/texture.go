package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// TextureExts are the texture file extensions DecodeTexture understands.
var TextureExts = []string{".jpg", ".jpeg", ".png", ".bmp", ".webp", ".tga"}

// LoadTexture decodes the image at path into RGBA, limiting its longest edge to maxEdge
// (0 means no limit).
func LoadTexture(path string, maxEdge int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	defer f.Close()
	img, err := DecodeTexture(f, filepath.Ext(path), maxEdge)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", path, err)
	}
	return img, nil
}

// DecodeTexture decodes r by extension. TGA has no magic number, so it is picked by
// extension; everything else goes through the registered image formats.
func DecodeTexture(r io.Reader, ext string, maxEdge int) (*image.RGBA, error) {
	var (
		img image.Image
		err error
	)
	if strings.EqualFold(ext, ".tga") {
		img, err = tga.Decode(r)
	} else {
		img, _, err = image.Decode(r)
	}
	if err != nil {
		return nil, fmt.Errorf("decode texture: %w", err)
	}
	return fitTexture(img, maxEdge), nil
}

// fitTexture converts img to RGBA and shrinks it, keeping aspect, so neither edge exceeds maxEdge.
func fitTexture(img image.Image, maxEdge int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxEdge > 0 && (w > maxEdge || h > maxEdge) {
		if w >= h {
			h = max(1, h*maxEdge/w)
			w = maxEdge
		} else {
			w = max(1, w*maxEdge/h)
			h = maxEdge
		}
		return transform.Resize(img, w, h, transform.Linear)
	}
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

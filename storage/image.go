package storage

import (
	"bytes"
	"image"
	_ "image/gif" // register decoder
	"image/jpeg"
	_ "image/png" // register decoder
)

// JPEGQuality is the quality images are encoded at by PutImage.
const JPEGQuality = 100

// LoadImage loads the record for id and decodes it as any registered
// image format. Undecodable records yield an empty Result.
func (s *Store) LoadImage(id string) <-chan Result[image.Image] {
	return Load(s, id, decodeImage)
}

// PutImage stores img as JPEG under id. Encoding happens inside the
// write; an encoding failure completes with ErrNoDataProvided.
func (s *Store) PutImage(img image.Image, id string) <-chan PutResult {
	return s.Put(jpegProvider(img), id)
}

// PutNewImage is PutImage under a freshly generated identifier.
func (s *Store) PutNewImage(img image.Image) <-chan PutResult {
	return s.PutNew(jpegProvider(img))
}

func decodeImage(b []byte) (image.Image, bool) {
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, false
	}
	return img, true
}

func jpegProvider(img image.Image) DataProvider {
	return func() []byte {
		if img == nil {
			return nil
		}
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
			return nil
		}
		return buf.Bytes()
	}
}

package student

import (
	"context"
	"encoding/base64"
	"io"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ErrNotImage is returned when an uploaded file does not sniff as an image.
var ErrNotImage = errors.New("file is not an image")

// ImageFile is one user-selected file pending intake.
type ImageFile struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// ImageFilesFromMultipart adapts uploaded form files for ReadImages.
func ImageFilesFromMultipart(headers []*multipart.FileHeader) []ImageFile {
	files := make([]ImageFile, len(headers))
	for i, fh := range headers {
		fh := fh
		files[i] = ImageFile{
			Name: fh.Filename,
			Open: func() (io.ReadCloser, error) { return fh.Open() },
		}
	}
	return files
}

// ReadImages reads every selected file into a self-contained data URL,
// preserving selection order. The batch is all-or-nothing: the first failed
// read fails the whole operation and no partial result is returned.
func (svc *Service) ReadImages(ctx context.Context, files []ImageFile) ([]string, error) {
	g, ctx := errgroup.WithContext(ctx)
	urls := make([]string, len(files))
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			url, err := encodeImage(file)
			if err != nil {
				return errors.Wrapf(err, "reading %s", file.Name)
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

// encodeImage base64-encodes the file content into a data URL, sniffing the
// content type from the payload itself.
func encodeImage(file ImageFile) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	content, err := ioutil.ReadAll(f)
	if err != nil {
		return "", err
	}
	ct := http.DetectContentType(content)
	if !strings.HasPrefix(ct, "image/") {
		return "", ErrNotImage
	}
	return "data:" + ct + ";base64," + base64.StdEncoding.EncodeToString(content), nil
}

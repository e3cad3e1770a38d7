package model

import "io"

// Upload is an in-flight file received from a multipart request, destined for
// the media side-channel.
type Upload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
}

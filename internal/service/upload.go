package service

// Upload is an in-memory file received from a multipart request.
// Handlers read the part fully before calling into services so the
// service layer never touches HTTP types.
type Upload struct {
	Name        string
	Size        int64
	ContentType string
	Data        []byte
}

package domain

import "path"

// Image — изображение товара, которое кладётся в объектное хранилище.
// Ключ объекта имеет вид "<слаг товара>/<ID>.<расширение>".
type Image struct {
	ID          string // uuid
	ObjectKey   string
	Data        []byte
	ContentType string
}

func NewImage(id string, prefix string, ext string, data []byte, contentType string) *Image {
	return &Image{
		ID:          id,
		ObjectKey:   path.Join(prefix, id+"."+ext),
		Data:        data,
		ContentType: contentType,
	}
}

func (i *Image) Size() int64 {
	return int64(len(i.Data))
}

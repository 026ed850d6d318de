package fio

// IOManager abstracts the random-access file under a record store.
// It can be custom in options.
type IOManager interface {
	ReadAt(buf []byte, offset int64) (int, error)
	WriteAt(data []byte, offset int64) (int, error)
	Size() (int64, error)
	Sync() error
	Close() error
}

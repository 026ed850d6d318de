package keydir

// Keydir is the in-memory id to offset index kept per store. It mirrors
// the on-disk state: rebuilt by a full scan at open, then updated by every
// mutating operation alongside its write.
// you can use some other data structure once you implement this interface
type Keydir interface {
	Put(id int32, offset int64) bool
	Get(id int32) (int64, bool)
	Delete(id int32) bool
	Len() int
}

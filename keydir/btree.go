package keydir

import (
	"sync"

	"github.com/google/btree"
)

var _ Keydir = (*BTree)(nil)

const defaultDegree = 32

type item struct {
	id     int32
	offset int64
}

func lessItem(a, b item) bool { return a.id < b.id }

// BTree implement the keydir
type BTree struct {
	tree *btree.BTreeG[item]

	lock sync.RWMutex
}

func NewBTree(degree int) *BTree {
	if degree <= 0 {
		degree = defaultDegree
	}
	return &BTree{tree: btree.NewG(degree, lessItem)}
}

func (bt *BTree) Put(id int32, offset int64) bool {
	bt.lock.Lock()
	defer bt.lock.Unlock()
	bt.tree.ReplaceOrInsert(item{id: id, offset: offset})
	return true
}

func (bt *BTree) Get(id int32) (int64, bool) {
	bt.lock.RLock()
	defer bt.lock.RUnlock()
	it, ok := bt.tree.Get(item{id: id})
	if !ok {
		return 0, false
	}
	return it.offset, true
}

func (bt *BTree) Delete(id int32) bool {
	bt.lock.Lock()
	defer bt.lock.Unlock()
	_, ok := bt.tree.Delete(item{id: id})
	return ok
}

func (bt *BTree) Len() int {
	bt.lock.RLock()
	defer bt.lock.RUnlock()
	return bt.tree.Len()
}

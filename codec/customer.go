package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/rentdb/rentdb/model"
)

// Customer slot: [1 active][4 id][30 name][15 phone].
const CustomerSize = 1 + 4 + model.NameWidth + model.PhoneWidth

var _ Codec[*model.Customer] = CustomerCodec{}

type CustomerCodec struct{}

func NewCustomerCodec() CustomerCodec { return CustomerCodec{} }

func (CustomerCodec) Size() int { return CustomerSize }

func (CustomerCodec) Marshal(cust *model.Customer) ([]byte, error) {
	data := make([]byte, CustomerSize)
	data[0] = ActiveFlag
	binary.LittleEndian.PutUint32(data[1:5], uint32(cust.ID))
	putString(data[5:35], cust.Name)
	putString(data[35:50], cust.Phone)
	return data, nil
}

func (CustomerCodec) Unmarshal(data []byte) (*model.Customer, error) {
	if len(data) != CustomerSize {
		return nil, fmt.Errorf("%w: customer slot is %d bytes, want %d", ErrSlotSize, len(data), CustomerSize)
	}
	return &model.Customer{
		ID:    int32(binary.LittleEndian.Uint32(data[1:5])),
		Name:  getString(data[5:35]),
		Phone: getString(data[35:50]),
	}, nil
}

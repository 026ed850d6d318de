package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/rentdb/rentdb/model"
)

// Rental slot: [1 active][4 id][4 customer][4 car][4 start][4 end][8 total].
// Dates travel as DDMMYYYY decimal int32.
const RentalSize = 1 + 4 + 4 + 4 + 4 + 4 + 8

var _ Codec[*model.Rental] = RentalCodec{}

type RentalCodec struct{}

func NewRentalCodec() RentalCodec { return RentalCodec{} }

func (RentalCodec) Size() int { return RentalSize }

func (RentalCodec) Marshal(r *model.Rental) ([]byte, error) {
	data := make([]byte, RentalSize)
	data[0] = ActiveFlag
	binary.LittleEndian.PutUint32(data[1:5], uint32(r.ID))
	binary.LittleEndian.PutUint32(data[5:9], uint32(r.CustomerID))
	binary.LittleEndian.PutUint32(data[9:13], uint32(r.CarID))
	binary.LittleEndian.PutUint32(data[13:17], uint32(r.StartDate))
	binary.LittleEndian.PutUint32(data[17:21], uint32(r.EndDate))
	binary.LittleEndian.PutUint64(data[21:29], math.Float64bits(r.TotalPrice))
	return data, nil
}

func (RentalCodec) Unmarshal(data []byte) (*model.Rental, error) {
	if len(data) != RentalSize {
		return nil, fmt.Errorf("%w: rental slot is %d bytes, want %d", ErrSlotSize, len(data), RentalSize)
	}
	return &model.Rental{
		ID:         int32(binary.LittleEndian.Uint32(data[1:5])),
		CustomerID: int32(binary.LittleEndian.Uint32(data[5:9])),
		CarID:      int32(binary.LittleEndian.Uint32(data[9:13])),
		StartDate:  model.Date(binary.LittleEndian.Uint32(data[13:17])),
		EndDate:    model.Date(binary.LittleEndian.Uint32(data[17:21])),
		TotalPrice: math.Float64frombits(binary.LittleEndian.Uint64(data[21:29])),
	}, nil
}

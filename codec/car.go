package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/rentdb/rentdb/model"
)

// Car slot: [1 active][4 id][30 model][10 plate][8 rate][1 rented].
const CarSize = 1 + 4 + model.ModelWidth + model.PlateWidth + 8 + 1

var _ Codec[*model.Car] = CarCodec{}

type CarCodec struct{}

func NewCarCodec() CarCodec { return CarCodec{} }

func (CarCodec) Size() int { return CarSize }

func (CarCodec) Marshal(car *model.Car) ([]byte, error) {
	data := make([]byte, CarSize)
	data[0] = ActiveFlag
	binary.LittleEndian.PutUint32(data[1:5], uint32(car.ID))
	putString(data[5:35], car.Model)
	putString(data[35:45], car.Plate)
	binary.LittleEndian.PutUint64(data[45:53], math.Float64bits(car.DailyRate))
	if car.Rented {
		data[53] = 1
	}
	return data, nil
}

func (CarCodec) Unmarshal(data []byte) (*model.Car, error) {
	if len(data) != CarSize {
		return nil, fmt.Errorf("%w: car slot is %d bytes, want %d", ErrSlotSize, len(data), CarSize)
	}
	return &model.Car{
		ID:        int32(binary.LittleEndian.Uint32(data[1:5])),
		Model:     getString(data[5:35]),
		Plate:     getString(data[35:45]),
		DailyRate: math.Float64frombits(binary.LittleEndian.Uint64(data[45:53])),
		Rented:    data[53] != 0,
	}, nil
}

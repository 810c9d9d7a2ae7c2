package comboios

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jack-barr3tt/comboios/src/common/types"
	"github.com/jack-barr3tt/comboios/src/common/upstream"
)

func (a *API) GetTrainDetails(ctx context.Context, trainID uint16, opts ...CallOption) (*types.Train, error) {
	cfg := a.callConfig(opts)
	endpoint := fmt.Sprintf("%s/station/trains/train?trainId=%d", a.trainsBase, trainID)

	train, err := upstream.Get[types.Train](ctx, a.client, endpoint, cfg.timeout, a.logger)
	if err != nil {
		return nil, fmt.Errorf("fetching train %d: %w", trainID, err)
	}

	return &train, nil
}

// ParseTrainID parses a decimal train number that must fit in 16 bits.
func ParseTrainID(s string) (uint16, error) {
	id, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, &upstream.InvalidIdentifierError{
			Kind:   "train id",
			Value:  s,
			Reason: "must be an integer between 0 and 65535",
		}
	}
	return uint16(id), nil
}

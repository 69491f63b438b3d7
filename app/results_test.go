package app

import (
	"github.com/gogo/protobuf/proto"
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

// joinResults pairs the key and value sets of a query response.
func joinResults(keys, values *ResultSet) ([]tokenswap.Model, error) {
	if len(keys.Results) != len(values.Results) {
		return nil, errors.Wrap(errors.ErrState, "mismatched result set size")
	}
	models := make([]tokenswap.Model, len(keys.Results))
	for i := range models {
		models[i] = tokenswap.Model{Key: keys.Results[i], Value: values.Results[i]}
	}
	return models, nil
}

// unmarshalOneResult decodes the first value of a query response into o.
// An empty response leaves o untouched.
func unmarshalOneResult(bz []byte, o proto.Message) error {
	var res ResultSet
	if err := proto.Unmarshal(bz, &res); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if len(res.Results) == 0 {
		return nil
	}
	if err := proto.Unmarshal(res.Results[0], o); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return nil
}

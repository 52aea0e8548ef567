package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/tabrl/tabrl/rl"
)

// RedisStore keeps a policy table in redis, one hash per state keyed
// by the JSON of the state, one field per action keyed by the JSON of
// the action. Descriptor types must be JSON-marshalable.
type RedisStore[ST rl.Trait[ST], AT rl.Trait[AT]] struct {
	client *redis.Client
	prefix string
}

func NewRedisStore[ST rl.Trait[ST], AT rl.Trait[AT]](addr, prefix string) *RedisStore[ST, AT] {
	return &RedisStore[ST, AT]{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
		prefix: prefix,
	}
}

func (s *RedisStore[ST, AT]) stateKey(state rl.State[ST]) (string, error) {
	bs, err := json.Marshal(state)
	if err != nil {
		return "", err
	}
	return s.prefix + ":" + string(bs), nil
}

// Save writes the table's export records
func (s *RedisStore[ST, AT]) Save(ctx context.Context, table *rl.Policy[ST, AT]) error {
	for _, record := range rl.Export(table) {
		key, err := s.stateKey(record.State)
		if err != nil {
			return fmt.Errorf("marshaling state key: %s", err)
		}
		for _, av := range record.Actions {
			field, err := json.Marshal(av.Action)
			if err != nil {
				return fmt.Errorf("marshaling action field: %s", err)
			}
			if err := s.client.HSet(ctx, key, string(field), av.Value).Err(); err != nil {
				return fmt.Errorf("writing policy row %s: %s", key, err)
			}
		}
	}
	return nil
}

// Load rebuilds a table from the stored records
func (s *RedisStore[ST, AT]) Load(ctx context.Context) (*rl.Policy[ST, AT], error) {
	keys, err := s.client.Keys(ctx, s.prefix+":*").Result()
	if err != nil {
		return nil, fmt.Errorf("listing policy rows: %s", err)
	}
	records := make([]rl.StateRecord[ST, AT], 0, len(keys))
	for _, key := range keys {
		var state rl.State[ST]
		if err := json.Unmarshal([]byte(key[len(s.prefix)+1:]), &state); err != nil {
			return nil, fmt.Errorf("unmarshaling state key %s: %s", key, err)
		}
		fields, err := s.client.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("reading policy row %s: %s", key, err)
		}
		record := rl.StateRecord[ST, AT]{State: state}
		for field, raw := range fields {
			var action rl.Action[AT]
			if err := json.Unmarshal([]byte(field), &action); err != nil {
				return nil, fmt.Errorf("unmarshaling action field %s: %s", field, err)
			}
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing value %s: %s", raw, err)
			}
			record.Actions = append(record.Actions, rl.ActionValue[AT]{Action: action, Value: value})
		}
		records = append(records, record)
	}
	return rl.Restore(records), nil
}

func (s *RedisStore[ST, AT]) Close() error {
	return s.client.Close()
}

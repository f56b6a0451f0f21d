package stats

import (
	"encoding/json"
	"fmt"
	"hash/fnv"

	bolt "go.etcd.io/bbolt"

	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/byteutil"
	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/cache"
	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/database"
	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/database/stats/model"
)

const prefix = "rounds"

var ErrNotFound = fmt.Errorf("not found")

func New(db *database.DB, cache cache.Cache) *DB {
	return &DB{sDB: db, cache: cache}
}

// DB archives finished rounds per player name. Room state itself is never
// persisted; only the cumulative match history survives restarts.
type DB struct {
	sDB *database.DB

	cache cache.Cache
}

func (db *DB) bytesBucket(name string) []byte {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	b := make([]byte, len(prefix)+8)
	copy(b, prefix)
	copy(b[len(prefix):], byteutil.EncodeInt64(int64(h.Sum64())))
	return b
}

func (db *DB) cacheKey(name string) string {
	return prefix + ":" + name
}

func (db *DB) Add(m model.Round) error {
	tx, err := db.sDB.Bolt.Begin(true)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback() //nolint

	b := tx.Bucket(db.bytesBucket(m.PlayerName))
	if b == nil {
		bs, err := tx.CreateBucket(db.bytesBucket(m.PlayerName))
		if err != nil {
			return fmt.Errorf("create bucket for %q: %w", m.PlayerName, err)
		}
		b = bs
	}

	binaryID, err := m.ID.MarshalBinary()
	if err != nil {
		return fmt.Errorf("uuid binary: %w", err)
	}

	bytes, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	if err := b.Put(binaryID, bytes); err != nil {
		return fmt.Errorf("put to bucket: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	if db.cache != nil {
		db.cache.Delete(db.cacheKey(m.PlayerName))
	}

	return nil
}

func (db *DB) FetchByPlayer(name string) ([]model.Round, error) {
	if db.cache != nil {
		if v, ok := db.cache.Get(db.cacheKey(name)); ok {
			return v.([]model.Round), nil
		}
	}

	var list []model.Round
	if err := db.sDB.Bolt.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(db.bytesBucket(name))
		if b == nil {
			return ErrNotFound
		}

		return b.ForEach(func(k, v []byte) error {
			var round model.Round
			if err := json.Unmarshal(v, &round); err != nil {
				return fmt.Errorf("json unmarshal: %w", err)
			}
			list = append(list, round)
			return nil
		})
	}); err != nil {
		return nil, fmt.Errorf("view transaction: %w", err)
	}

	if db.cache != nil {
		db.cache.Add(db.cacheKey(name), list)
	}

	return list, nil
}

func (db *DB) FetchLifetime(name string) (model.Lifetime, error) {
	var agg model.Lifetime

	rounds, err := db.FetchByPlayer(name)
	if err != nil {
		return agg, fmt.Errorf("fetch by player: %w", err)
	}

	for _, round := range rounds {
		agg.Rounds++
		agg.Points += round.Points
		if round.WasSpy {
			agg.SpyRounds++
			if round.GuessedWord {
				agg.WordsFound++
			}
		} else if round.VotedSpy {
			agg.SpyCatches++
		}
	}

	return agg, nil
}

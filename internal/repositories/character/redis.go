package character

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
	redis "github.com/redis/go-redis/v9"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/errors"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/pkg/clock"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/pkg/idgen"
	redisclient "github.com/CraneCD/dnd-55e-character-sheet/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	nameIndexKey       = "characters"
	idPrefixCharacter  = "char"

	// Error messages
	errNameEmpty   = "character name cannot be empty"
	errSnapshotNil = "character snapshot cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	idGen  idgen.Generator
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	IDGen  idgen.Generator
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	gen := cfg.IDGen
	if gen == nil {
		gen = idgen.NewUUID(idPrefixCharacter)
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		idGen:  gen,
	}, nil
}

func characterKey(name string) string {
	return characterKeyPrefix + name
}

// entityName checks that e is a named character and returns its store name
func entityName(e core.Entity) (string, error) {
	if e == nil {
		return "", errors.WrapWithCode(core.ErrNilEntity, errors.CodeInvalidArgument, "character entity is required")
	}
	if e.GetType() != dnd5e.EntityTypeCharacter {
		return "", errors.WrapWithCode(
			core.NewEntityError("upsert", e.GetType(), e.GetID(), core.ErrInvalidType),
			errors.CodeInvalidArgument, "only characters can be stored").
			WithMeta("type", e.GetType())
	}

	name := strings.TrimSpace(e.GetID())
	if name == "" {
		return "", errors.WrapWithCode(core.ErrEmptyID, errors.CodeInvalidArgument, errNameEmpty)
	}
	return name, nil
}

func (r *redisRepository) GetAll(ctx context.Context, _ GetAllInput) (*GetAllOutput, error) {
	names, err := r.client.SMembers(ctx, nameIndexKey).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to get character names from Redis",
			"index_key", nameIndexKey,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to list characters")
	}
	sort.Strings(names)

	slog.DebugContext(ctx, "found character names in index",
		"index_key", nameIndexKey,
		"count", len(names))

	records := make([]*Record, 0, len(names))
	for _, name := range names {
		getOutput, err := r.Get(ctx, GetInput{Name: name})
		switch {
		case err == nil:
		case errors.IsNotFound(err):
			// If character doesn't exist, clean up the index
			slog.WarnContext(ctx, "character not found, cleaning up index",
				"name", name,
				"index_key", nameIndexKey)
			if serr := r.client.SRem(ctx, nameIndexKey, name).Err(); serr != nil {
				slog.ErrorContext(ctx, "failed to remove character from index",
					"name", name,
					"index_key", nameIndexKey,
					"error", serr.Error())
			}
			continue
		case errors.IsDataLoss(err):
			slog.WarnContext(ctx, "skipping undecodable character, run doctor to repair",
				"name", name,
				"error", err.Error())
			continue
		default:
			return nil, errors.Wrapf(err, "failed to get character %s", name)
		}
		records = append(records, getOutput.Record)
	}

	return &GetAllOutput{Records: records}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	result, err := r.client.Get(ctx, characterKey(name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character %s not found", name)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var record Record
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal character data").
			WithMeta("name", name)
	}
	if record.Snapshot == nil {
		return nil, errors.DataLossf("character %s has no snapshot", name)
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	name, err := entityName(input.Entity)
	if err != nil {
		return nil, err
	}
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument(errSnapshotNil)
	}

	// Keep the ID of an existing record
	id := ""
	existing, err := r.Get(ctx, GetInput{Name: name})
	switch {
	case err == nil:
		id = existing.Record.ID
	case errors.IsNotFound(err), errors.IsDataLoss(err):
		// new record, or a corrupt one being overwritten
	default:
		return nil, err
	}

	created := id == ""
	if created {
		id = r.idGen.Generate()
	}

	record := &Record{
		ID:       id,
		Name:     name,
		SavedAt:  r.clock.Now(),
		Snapshot: input.Snapshot,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKey(name), data, 0) // No TTL for characters
	pipe.SAdd(ctx, nameIndexKey, name)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save character")
	}

	slog.DebugContext(ctx, "saved character",
		"name", name,
		"id", id,
		"created", created)

	return &UpsertOutput{Record: record, Created: created}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, characterKey(name))
	pipe.SRem(ctx, nameIndexKey, name)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	if del.Val() == 0 {
		return nil, errors.NotFoundf("character %s not found", name)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) Check(ctx context.Context, input CheckInput) (*CheckOutput, error) {
	indexed, err := r.client.SMembers(ctx, nameIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read character index")
	}
	inIndex := make(map[string]bool, len(indexed))
	for _, name := range indexed {
		inIndex[name] = true
	}

	out := &CheckOutput{}
	stored := make(map[string]bool)

	iter := r.client.Scan(ctx, 0, characterKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		name := strings.TrimPrefix(iter.Val(), characterKeyPrefix)
		if stored[name] {
			// SCAN may return a key more than once
			continue
		}
		stored[name] = true
		out.Checked++

		if _, err := r.Get(ctx, GetInput{Name: name}); err != nil {
			switch {
			case errors.IsDataLoss(err):
				out.Corrupted = append(out.Corrupted, name)
				continue
			case errors.IsNotFound(err):
				// deleted while scanning
				delete(stored, name)
				out.Checked--
				continue
			default:
				return nil, err
			}
		}

		if !inIndex[name] {
			out.Unindexed = append(out.Unindexed, name)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan characters")
	}

	for _, name := range indexed {
		if !stored[name] {
			out.Dangling = append(out.Dangling, name)
		}
	}

	sort.Strings(out.Corrupted)
	sort.Strings(out.Unindexed)
	sort.Strings(out.Dangling)

	slog.InfoContext(ctx, "checked character store",
		"checked", out.Checked,
		"corrupted", len(out.Corrupted),
		"unindexed", len(out.Unindexed),
		"dangling", len(out.Dangling))

	if !input.Repair || len(out.Corrupted)+len(out.Unindexed)+len(out.Dangling) == 0 {
		return out, nil
	}

	pipe := r.client.TxPipeline()
	for _, name := range out.Corrupted {
		pipe.Del(ctx, characterKey(name))
		pipe.SRem(ctx, nameIndexKey, name)
	}
	for _, name := range out.Unindexed {
		pipe.SAdd(ctx, nameIndexKey, name)
	}
	for _, name := range out.Dangling {
		pipe.SRem(ctx, nameIndexKey, name)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to repair character store")
	}

	slog.WarnContext(ctx, "repaired character store",
		"removed", append(append([]string{}, out.Corrupted...), out.Dangling...),
		"reindexed", out.Unindexed)

	out.Repaired = true
	return out, nil
}

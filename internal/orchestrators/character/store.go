package character

import (
	"context"
	"log/slog"
	"strings"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/errors"
	characterrepo "github.com/CraneCD/dnd-55e-character-sheet/internal/repositories/character"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/services/character"
)

// Export projects the character onto its JSON record
func (o *Orchestrator) Export(_ context.Context, input *character.ExportInput) (*character.ExportOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}

	snap := o.converter.ToSnapshot(input.Character)
	data, err := o.converter.Marshal(snap)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export character")
	}

	return &character.ExportOutput{
		Snapshot: snap,
		Data:     data,
		FileName: dnd5e.ExportFileName(input.Character.Name),
	}, nil
}

// Import rebuilds a character from a JSON record. Malformed fields are
// repaired or dropped; only a record that is not a JSON object fails.
func (o *Orchestrator) Import(ctx context.Context, input *character.ImportInput) (*character.StateOutput, error) {
	if input == nil || len(input.Data) == 0 {
		return nil, errors.InvalidArgument("character data is required")
	}

	snap, err := o.converter.Unmarshal(input.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to import character")
	}

	state := o.converter.FromSnapshot(snap)
	slog.DebugContext(ctx, "imported character", "name", state.Name)

	return &character.StateOutput{Character: state}, nil
}

// Save stores the character under its name, replacing any earlier save
func (o *Orchestrator) Save(ctx context.Context, input *character.SaveInput) (*character.SaveOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}

	if input.Character.GetID() == "" {
		return nil, errors.InvalidArgument("character name is required")
	}

	upsertOutput, err := o.characterRepo.Upsert(ctx, characterrepo.UpsertInput{
		Entity:   input.Character,
		Snapshot: o.converter.ToSnapshot(o.commit(input.Character.Clone())),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save character")
	}

	record := upsertOutput.Record
	slog.InfoContext(ctx, "saved character",
		"name", record.Name,
		"id", record.ID,
		"created", upsertOutput.Created)

	return &character.SaveOutput{
		ID:      record.ID,
		Name:    record.Name,
		SavedAt: record.SavedAt,
		Created: upsertOutput.Created,
	}, nil
}

// Load restores a stored character, recomputing everything derived
func (o *Orchestrator) Load(ctx context.Context, input *character.LoadInput) (*character.StateOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("character name is required")
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{Name: input.Name})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load character")
	}

	return &character.StateOutput{
		Character: o.converter.FromSnapshot(getOutput.Record.Snapshot),
	}, nil
}

// List returns a summary of every stored character
func (o *Orchestrator) List(ctx context.Context, _ *character.ListInput) (*character.ListOutput, error) {
	getAllOutput, err := o.characterRepo.GetAll(ctx, characterrepo.GetAllInput{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}

	summaries := make([]*character.Summary, 0, len(getAllOutput.Records))
	for _, record := range getAllOutput.Records {
		summary := &character.Summary{
			ID:      record.ID,
			Name:    record.Name,
			SavedAt: record.SavedAt,
		}
		if record.Snapshot != nil {
			summary.Level = record.Snapshot.Level
			summary.Class = record.Snapshot.Class
		}
		summaries = append(summaries, summary)
	}

	return &character.ListOutput{Characters: summaries}, nil
}

// Delete removes a stored character
func (o *Orchestrator) Delete(ctx context.Context, input *character.DeleteInput) (*character.DeleteOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("character name is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{Name: input.Name}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	slog.InfoContext(ctx, "deleted character", "name", input.Name)
	return &character.DeleteOutput{}, nil
}

// CheckStore scans the character store for damaged records and, when asked,
// repairs them
func (o *Orchestrator) CheckStore(ctx context.Context, input *character.CheckStoreInput) (*character.CheckStoreOutput, error) {
	if input == nil {
		input = &character.CheckStoreInput{}
	}

	checkOutput, err := o.characterRepo.Check(ctx, characterrepo.CheckInput{Repair: input.Repair})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check character store")
	}

	return &character.CheckStoreOutput{
		Checked:   checkOutput.Checked,
		Corrupted: checkOutput.Corrupted,
		Unindexed: checkOutput.Unindexed,
		Dangling:  checkOutput.Dangling,
		Repaired:  checkOutput.Repaired,
	}, nil
}

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rahulsv/studyloop/ent"
	"github.com/rahulsv/studyloop/ent/conceptmastery"
	"github.com/rahulsv/studyloop/ent/knowledgegap"
)

// conceptRepo implements ConceptRepo using the ent client.
//
// SQLite upserts through ent require the feature-flagged sql/upsert
// extension, so writes here use query-then-create-or-update. The unique
// (user_id, concept_name) index still guards against duplicates.
type conceptRepo struct {
	client *ent.Client
}

func (r *conceptRepo) UpdateMastery(ctx context.Context, userID, concept string, correct bool, knowledgeType string) error {
	now := time.Now().UTC()

	row, err := r.find(ctx, userID, concept)
	if err != nil {
		return err
	}

	if row == nil {
		correctCount := 0
		mastery := 0.0
		if correct {
			correctCount = 1
			mastery = 1.0
		}
		builder := r.client.ConceptMastery.Create().
			SetUserID(userID).
			SetConceptName(concept).
			SetMasteryLevel(mastery).
			SetTimesSeen(1).
			SetTimesCorrect(correctCount).
			SetLastSeen(now)
		if knowledgeType != "" {
			builder = builder.SetKnowledgeType(knowledgeType)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("create concept mastery: %w", err)
		}
		return nil
	}

	seen := row.TimesSeen + 1
	correctCount := row.TimesCorrect
	if correct {
		correctCount++
	}
	builder := row.Update().
		SetTimesSeen(seen).
		SetTimesCorrect(correctCount).
		SetMasteryLevel(float64(correctCount) / float64(seen)).
		SetLastSeen(now)
	if knowledgeType != "" {
		builder = builder.SetKnowledgeType(knowledgeType)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("update concept mastery: %w", err)
	}
	return nil
}

func (r *conceptRepo) RecordDifficultyAchievement(ctx context.Context, userID, concept string, level int, correct bool) error {
	row, err := r.find(ctx, userID, concept)
	if err != nil {
		return err
	}
	if row == nil {
		// UpdateMastery has not run yet for this concept; nothing to fold
		// the level into.
		return nil
	}

	// Running average over times_seen answers. times_seen is at least 1
	// because the row exists.
	n := float64(row.TimesSeen)
	avg := (row.AvgDifficulty*(n-1) + float64(level)) / n

	builder := row.Update().SetAvgDifficulty(avg)
	if correct && level > row.MaxDifficulty {
		builder = builder.SetMaxDifficulty(level)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("record difficulty achievement: %w", err)
	}
	return nil
}

func (r *conceptRepo) SetStruggleArea(ctx context.Context, userID, concept, area string) error {
	row, err := r.find(ctx, userID, concept)
	if err != nil {
		return err
	}
	if row == nil {
		return nil
	}
	if _, err := row.Update().SetStruggleArea(area).Save(ctx); err != nil {
		return fmt.Errorf("set struggle area: %w", err)
	}
	return nil
}

func (r *conceptRepo) Mastery(ctx context.Context, userID, concept string) (*ConceptMastery, error) {
	row, err := r.find(ctx, userID, concept)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	m := entMasteryToMastery(row)
	return &m, nil
}

func (r *conceptRepo) Complexity(ctx context.Context, userID, concept string) (int, error) {
	row, err := r.find(ctx, userID, concept)
	if err != nil {
		return 0, err
	}
	if row == nil {
		return 3, nil
	}
	return row.Complexity, nil
}

func (r *conceptRepo) AllMastery(ctx context.Context, userID string, minMastery float64) ([]ConceptMastery, error) {
	rows, err := r.client.ConceptMastery.Query().
		Where(
			conceptmastery.UserID(userID),
			conceptmastery.MasteryLevelGTE(minMastery),
		).
		Order(ent.Desc(conceptmastery.FieldMasteryLevel)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query all mastery: %w", err)
	}
	return entMasteriesToMasteries(rows), nil
}

func (r *conceptRepo) WeakConcepts(ctx context.Context, userID string, threshold float64) ([]ConceptMastery, error) {
	rows, err := r.client.ConceptMastery.Query().
		Where(
			conceptmastery.UserID(userID),
			conceptmastery.MasteryLevelLT(threshold),
		).
		Order(ent.Asc(conceptmastery.FieldMasteryLevel)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query weak concepts: %w", err)
	}
	return entMasteriesToMasteries(rows), nil
}

func (r *conceptRepo) AddGap(ctx context.Context, userID, concept, gapType string, related []string) (int, error) {
	builder := r.client.KnowledgeGap.Create().
		SetUserID(userID).
		SetConceptName(concept).
		SetGapType(gapType).
		SetIdentifiedAt(time.Now().UTC())
	if len(related) > 0 {
		builder = builder.SetRelatedConcepts(related)
	}

	g, err := builder.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("add knowledge gap: %w", err)
	}
	return g.ID, nil
}

func (r *conceptRepo) ResolveGap(ctx context.Context, gapID int) error {
	err := r.client.KnowledgeGap.UpdateOneID(gapID).
		SetResolvedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("resolve knowledge gap: %w", err)
	}
	return nil
}

func (r *conceptRepo) ActiveGaps(ctx context.Context, userID string) ([]Gap, error) {
	rows, err := r.client.KnowledgeGap.Query().
		Where(
			knowledgegap.UserID(userID),
			knowledgegap.ResolvedAtIsNil(),
		).
		Order(ent.Desc(knowledgegap.FieldIdentifiedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active gaps: %w", err)
	}

	out := make([]Gap, 0, len(rows))
	for _, g := range rows {
		out = append(out, Gap{
			ID:              g.ID,
			UserID:          g.UserID,
			ConceptName:     g.ConceptName,
			GapType:         g.GapType,
			IdentifiedAt:    g.IdentifiedAt,
			ResolvedAt:      g.ResolvedAt,
			RelatedConcepts: g.RelatedConcepts,
		})
	}
	return out, nil
}

func (r *conceptRepo) find(ctx context.Context, userID, concept string) (*ent.ConceptMastery, error) {
	row, err := r.client.ConceptMastery.Query().
		Where(
			conceptmastery.UserID(userID),
			conceptmastery.ConceptName(concept),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query concept mastery: %w", err)
	}
	return row, nil
}

func entMasteryToMastery(row *ent.ConceptMastery) ConceptMastery {
	return ConceptMastery{
		UserID:        row.UserID,
		ConceptName:   row.ConceptName,
		MasteryLevel:  row.MasteryLevel,
		TimesSeen:     row.TimesSeen,
		TimesCorrect:  row.TimesCorrect,
		LastSeen:      row.LastSeen,
		KnowledgeType: row.KnowledgeType,
		AvgDifficulty: row.AvgDifficulty,
		MaxDifficulty: row.MaxDifficulty,
		StruggleArea:  row.StruggleArea,
		Complexity:    row.Complexity,
	}
}

func entMasteriesToMasteries(rows []*ent.ConceptMastery) []ConceptMastery {
	out := make([]ConceptMastery, 0, len(rows))
	for _, row := range rows {
		out = append(out, entMasteryToMastery(row))
	}
	return out
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rahulsv/studyloop/ent"
	"github.com/rahulsv/studyloop/ent/predicate"
	"github.com/rahulsv/studyloop/ent/quizresult"
)

// quizRepo implements QuizRepo. Aggregate stats go through raw SQL; ent's
// query builder has no multi-column SUM/COUNT projection.
type quizRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *quizRepo) Start(ctx context.Context, userID, sessionID, topic string, totalQuestions int) (int, error) {
	q, err := r.client.QuizResult.Create().
		SetUserID(userID).
		SetSessionID(sessionID).
		SetTopic(topic).
		SetTotalQuestions(totalQuestions).
		SetStartedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("start quiz: %w", err)
	}
	return q.ID, nil
}

func (r *quizRepo) UpdateProgress(ctx context.Context, quizID, correct, mistakes int, details []QuestionDetail) error {
	builder := r.client.QuizResult.UpdateOneID(quizID).
		SetCorrectAnswers(correct).
		SetTotalMistakes(mistakes)
	if len(details) > 0 {
		builder = builder.SetQuestionDetails(details)
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("update quiz progress: %w", err)
	}
	return nil
}

func (r *quizRepo) Complete(ctx context.Context, quizID int) error {
	err := r.client.QuizResult.UpdateOneID(quizID).
		SetCompletedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("complete quiz: %w", err)
	}
	return nil
}

func (r *quizRepo) History(ctx context.Context, userID, topic string, limit int) ([]QuizSummary, error) {
	preds := []predicate.QuizResult{quizresult.UserID(userID)}
	if topic != "" {
		preds = append(preds, quizresult.Topic(topic))
	}

	rows, err := r.client.QuizResult.Query().
		Where(preds...).
		Order(ent.Desc(quizresult.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz history: %w", err)
	}

	out := make([]QuizSummary, 0, len(rows))
	for _, q := range rows {
		out = append(out, QuizSummary{
			ID:             q.ID,
			UserID:         q.UserID,
			SessionID:      q.SessionID,
			Topic:          q.Topic,
			TotalQuestions: q.TotalQuestions,
			CorrectAnswers: q.CorrectAnswers,
			TotalMistakes:  q.TotalMistakes,
			StartedAt:      q.StartedAt,
			CompletedAt:    q.CompletedAt,
			Details:        q.QuestionDetails,
		})
	}
	return out, nil
}

func (r *quizRepo) Stats(ctx context.Context, userID string) (LearnerStats, error) {
	var stats LearnerStats

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(total_questions), 0),
		       COALESCE(SUM(correct_answers), 0),
		       COALESCE(SUM(total_mistakes), 0),
		       COUNT(DISTINCT topic)
		FROM quiz_results WHERE user_id = ?`, userID).
		Scan(&stats.TotalQuizzes, &stats.TotalQuestions, &stats.TotalCorrect,
			&stats.TotalMistakes, &stats.TopicsStudied)
	if err != nil {
		return stats, fmt.Errorf("aggregate quiz stats: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(AVG(mastery_level), 0),
		       COALESCE(SUM(CASE WHEN mastery_level >= 0.8 THEN 1 ELSE 0 END), 0)
		FROM concept_masteries WHERE user_id = ?`, userID).
		Scan(&stats.ConceptsSeen, &stats.AvgMastery, &stats.MasteredCount)
	if err != nil {
		return stats, fmt.Errorf("aggregate mastery stats: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM knowledge_gaps WHERE user_id = ? AND resolved_at IS NULL`, userID).
		Scan(&stats.ActiveGaps)
	if err != nil {
		return stats, fmt.Errorf("aggregate gap stats: %w", err)
	}

	return stats, nil
}

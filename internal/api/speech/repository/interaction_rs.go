package speechRepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"BrandBloom/internal/entity"
	contextPkg "BrandBloom/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SpeechInteractionDB struct {
	ID         sql.NullString `db:"id"`
	UserID     sql.NullString `db:"user_id"`
	Action     sql.NullString `db:"action"`
	FormID     sql.NullString `db:"form_id"`
	SpeechData []byte         `db:"speech_data"`
	UserAgent  sql.NullString `db:"user_agent"`
	Viewport   sql.NullString `db:"viewport"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r *interactionRepository) CreateInteraction(c context.Context, interaction entity.SpeechInteraction) error {
	requestID := contextPkg.GetRequestID(c)

	speechData, err := json.Marshal(interaction.SpeechData)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal speech data for CreateInteraction")
		return err
	}

	argsKV := map[string]interface{}{
		"id":          interaction.ID,
		"user_id":     interaction.UserID,
		"action":      interaction.Action,
		"form_id":     interaction.FormID,
		"speech_data": speechData,
		"user_agent":  interaction.UserAgent,
		"viewport":    interaction.Viewport,
		"created_at":  interaction.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateInteraction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateInteraction")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating interaction")

		return err
	}

	return nil
}

func (r *interactionRepository) GetInteractionsByUserID(c context.Context, userID string, limit int) ([]entity.SpeechInteraction, error) {
	requestID := contextPkg.GetRequestID(c)
	var interactions []SpeechInteractionDB

	argsKV := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
	}

	query, args, err := sqlx.Named(queryGetInteractionsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetInteractionsByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &interactions, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetInteractionsByUserID execution err")
		return nil, err
	}

	result := make([]entity.SpeechInteraction, 0, len(interactions))
	for _, interaction := range interactions {
		result = append(result, r.makeSpeechInteraction(interaction))
	}

	return result, nil
}

func (r *interactionRepository) makeSpeechInteraction(row SpeechInteractionDB) entity.SpeechInteraction {
	interaction := entity.SpeechInteraction{
		ID:        row.ID.String,
		UserID:    row.UserID.String,
		Action:    row.Action.String,
		FormID:    row.FormID.String,
		UserAgent: row.UserAgent.String,
		Viewport:  row.Viewport.String,
		CreatedAt: row.CreatedAt,
	}

	if len(row.SpeechData) > 0 {
		var speechData map[string]interface{}
		if err := json.Unmarshal(row.SpeechData, &speechData); err == nil {
			interaction.SpeechData = speechData
		}
	}

	return interaction
}

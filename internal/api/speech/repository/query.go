package speechRepository

const (
	queryCreateInteraction = `
		INSERT INTO speech_interactions (
			id,
			user_id,
			action,
			form_id,
			speech_data,
			user_agent,
			viewport,
			created_at
		) VALUES (
			:id,
			:user_id,
			:action,
			:form_id,
			:speech_data,
			:user_agent,
			:viewport,
			:created_at
		)
	`

	queryGetInteractionsByUserID = `
		SELECT
			id,
			user_id,
			action,
			form_id,
			speech_data,
			user_agent,
			viewport,
			created_at
		FROM speech_interactions
		WHERE user_id = :user_id
		ORDER BY created_at DESC
		LIMIT :limit
	`
)

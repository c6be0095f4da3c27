package store

const (
	saveVisit = `
		INSERT INTO visits (
			local_id,
			questionnaire_id,
			site_id,
			locality_id,
			adult_count,
			child_count,
			occurred_at,
			enqueued_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (local_id) DO NOTHING;`

	getAllLocalities = `
		SELECT id, name, postal_code
		FROM localities
		ORDER BY name;`

	localityExists = `
		SELECT EXISTS (SELECT 1 FROM localities WHERE id = $1);`

	incrementUsage = `
		INSERT INTO locality_usage (questionnaire_id, locality_id, use_count)
		VALUES ($1, $2, 1)
		ON CONFLICT (questionnaire_id, locality_id)
		DO UPDATE SET use_count = locality_usage.use_count + 1;`

	recomputePercentages = `
		UPDATE locality_usage AS u
		SET usage_percentage = ROUND(u.use_count * 100.0 / t.total, 2)
		FROM (
			SELECT SUM(use_count) AS total
			FROM locality_usage
			WHERE questionnaire_id = $1
		) AS t
		WHERE u.questionnaire_id = $1 AND t.total > 0;`

	getUsage = `
		SELECT questionnaire_id, locality_id, use_count, usage_percentage, pinned, display_order
		FROM locality_usage
		WHERE questionnaire_id = $1
		ORDER BY locality_id;`

	getQuestionnaire = `
		SELECT id, name, active
		FROM questionnaires
		WHERE id = $1;`

	getSites = `
		SELECT id, questionnaire_id, name
		FROM questionnaire_sites
		WHERE questionnaire_id = $1
		ORDER BY id;`
)

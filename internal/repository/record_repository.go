package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"minagallery/internal/model"
)

type RecordRepository struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// SaveGeneration stores the row exactly as received; the normalizer
// resolves historical field names at read time.
func (r *RecordRepository) SaveGeneration(accountID string, payload model.RawRecord) (int64, error) {
	return r.saveRecord("generation_record", accountID, payload)
}

func (r *RecordRepository) SaveFeedback(accountID string, payload model.RawRecord) (int64, error) {
	return r.saveRecord("feedback_record", accountID, payload)
}

func (r *RecordRepository) saveRecord(table, accountID string, payload model.RawRecord) (int64, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("marshal payload: %w", err)
	}

	var id int64
	err = r.db.QueryRow(`
		INSERT INTO `+table+`(account_id, payload)
		VALUES($1, $2)
		RETURNING id
	`, accountID, raw).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *RecordRepository) ListGenerations(accountID string) ([]model.RawRecord, error) {
	return r.listRecords("generation_record", accountID)
}

func (r *RecordRepository) ListFeedbacks(accountID string) ([]model.RawRecord, error) {
	return r.listRecords("feedback_record", accountID)
}

func (r *RecordRepository) listRecords(table, accountID string) ([]model.RawRecord, error) {
	rows, err := r.db.Query(`
		SELECT payload
		FROM `+table+`
		WHERE account_id = $1
		ORDER BY ingested_at DESC, id DESC
	`, accountID)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.RawRecord
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}

		var rec model.RawRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			// skip corrupted rows
			continue
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// DeleteGeneration matches the id under any of its historical field
// names. Returns false when no row matched.
func (r *RecordRepository) DeleteGeneration(accountID, generationID string) (bool, error) {
	res, err := r.db.Exec(`
		DELETE FROM generation_record
		WHERE account_id = $1
		AND COALESCE(payload->>'id', payload->>'generation_id', payload->>'mg_generation_id') = $2
	`, accountID, generationID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *RecordRepository) GetGenerationTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM generation_record
	`).Scan(&total)
	return total, err
}

func (r *RecordRepository) GetAccount(accountID string) (*model.Account, error) {
	var a model.Account
	err := r.db.QueryRow(`
		SELECT account_id, email, credits, expires_at
		FROM account
		WHERE account_id = $1
	`, accountID).Scan(&a.ID, &a.Email, &a.Credits, &a.ExpiresAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &a, nil
}

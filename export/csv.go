package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"betadmin/models"
)

// WriteBets writes the given bet rows as CSV, matching the columns shown on
// the Bets screen. Generated entirely locally from the loaded rows.
func WriteBets(w io.Writer, bets []models.Bet) error {
	writer := csv.NewWriter(w)

	header := []string{"id", "user_phone", "bet_type", "stake_amount", "status", "payout_amount", "created_at"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, bet := range bets {
		record := []string{
			fmt.Sprintf("%d", bet.ID),
			bet.UserPhone,
			bet.BetType,
			fmt.Sprintf("%.2f", bet.StakeAmount),
			bet.Status,
			fmt.Sprintf("%.2f", bet.PayoutAmount),
			bet.CreatedAt,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

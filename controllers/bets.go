package controllers

import (
	"io"
	"strconv"

	"betadmin/export"
	"betadmin/models"
	"betadmin/services"
)

type betAPI interface {
	List(params services.ListBetsParams) (*models.BetListResponse, error)
	Active() ([]models.Bet, error)
	Statistics(params services.StatisticsParams) (*models.BetStatistics, error)
}

// BetsController drives the read-only Bets screen: type/status/date filters,
// statistics and the CSV export of the currently loaded rows.
type BetsController struct {
	api      betAPI
	notifier Notifier

	List *List[models.Bet]
}

func NewBetsController(api betAPI, opts ListOptions) *BetsController {
	bc := &BetsController{api: api, notifier: opts.Notifier}
	if bc.notifier == nil {
		bc.notifier = LogNotifier{}
		opts.Notifier = bc.notifier
	}

	bc.List = NewList(func(page, pageSize int, filters map[string]string) (Page[models.Bet], error) {
		params := services.ListBetsParams{
			Page:     page,
			PageSize: pageSize,
			BetType:  filters["bet_type"],
			Status:   filters["status"],
			DateFrom: filters["date_from"],
			DateTo:   filters["date_to"],
		}
		if raw := filters["user_id"]; raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
				params.UserID = uint(id)
			}
		}

		resp, err := api.List(params)
		if err != nil {
			return Page[models.Bet]{}, err
		}
		return Page[models.Bet]{Items: resp.Bets, Total: resp.Total, TotalPages: resp.TotalPages}, nil
	}, opts)

	return bc
}

// Statistics fetches aggregate figures for the active filters.
func (bc *BetsController) Statistics() (*models.BetStatistics, error) {
	stats, err := bc.api.Statistics(services.StatisticsParams{
		BetType:  bc.List.Filter("bet_type"),
		DateFrom: bc.List.Filter("date_from"),
		DateTo:   bc.List.Filter("date_to"),
	})
	if err != nil {
		bc.notifier.Error("Failed to load statistics: " + err.Error())
		return nil, err
	}
	return stats, nil
}

// Export writes the currently loaded rows as CSV. The export is generated
// locally; no backend endpoint is involved.
func (bc *BetsController) Export(w io.Writer) error {
	if err := export.WriteBets(w, bc.List.Items()); err != nil {
		bc.notifier.Error("Failed to export bets: " + err.Error())
		return err
	}
	bc.notifier.Success("Bets exported")
	return nil
}

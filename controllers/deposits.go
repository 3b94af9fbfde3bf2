package controllers

import (
	"betadmin/models"
	"betadmin/services"
	"betadmin/validators"
)

type depositAPI interface {
	Pending() ([]models.Deposit, error)
	List(params services.ListDepositsParams) (*models.DepositListResponse, error)
	Create(req services.CreateDepositRequest) (*models.Deposit, error)
	Approve(depositID uint) error
	Reject(depositID uint, reason string) error
}

// Deposit screen tabs.
const (
	TabPending = "pending"
	TabAll     = "all"
)

// DepositsController drives the Deposits screen: the pending/all tabs, manual
// deposit creation and the approve/reject review actions.
type DepositsController struct {
	api        depositAPI
	notifier   Notifier
	minDeposit float64

	List *List[models.Deposit]
	Tab  string

	Selected        *models.Deposit
	ShowCreateModal bool
	ShowRejectModal bool
	CreateForm      validators.DepositForm
	RejectReason    string
}

func NewDepositsController(api depositAPI, minDeposit float64, opts ListOptions) *DepositsController {
	dc := &DepositsController{api: api, minDeposit: minDeposit, Tab: TabPending, notifier: opts.Notifier}
	if dc.notifier == nil {
		dc.notifier = LogNotifier{}
		opts.Notifier = dc.notifier
	}

	dc.List = NewList(func(page, pageSize int, filters map[string]string) (Page[models.Deposit], error) {
		resp, err := api.List(services.ListDepositsParams{
			Page:          page,
			PageSize:      pageSize,
			Status:        filters["status"],
			PaymentMethod: filters["payment_method"],
		})
		if err != nil {
			return Page[models.Deposit]{}, err
		}
		return Page[models.Deposit]{Items: resp.Deposits, Total: resp.Total, TotalPages: resp.TotalPages}, nil
	}, opts)
	dc.List.SetFetchAll(func(map[string]string) ([]models.Deposit, error) {
		return api.Pending()
	})
	dc.List.SetAllMode(true)

	return dc
}

// SetTab switches between the unpaginated pending view and the paginated
// history view, reloading either way.
func (dc *DepositsController) SetTab(tab string) {
	dc.Tab = tab
	dc.List.SetAllMode(tab == TabPending)
}

// OpenCreateModal resets the creation form.
func (dc *DepositsController) OpenCreateModal() {
	dc.CreateForm = validators.DepositForm{PaymentMethod: models.PaymentMethodBankTransfer}
	dc.ShowCreateModal = true
}

// CloseCreateModal dismisses the form without submitting.
func (dc *DepositsController) CloseCreateModal() {
	dc.CreateForm = validators.DepositForm{}
	dc.ShowCreateModal = false
}

// SubmitCreate validates and submits the creation form. Validation failures
// block the request entirely. On success the modal closes, the form resets
// and the list reloads; auto-approved deposits get their own success message
// because the money has already moved.
func (dc *DepositsController) SubmitCreate() {
	if errs := validators.ValidateDepositForm(dc.CreateForm, dc.minDeposit); len(errs) > 0 {
		dc.notifier.Error(validators.FirstError(errs))
		return
	}

	deposit, err := dc.api.Create(services.CreateDepositRequest{
		UserID:        dc.CreateForm.UserID,
		Amount:        dc.CreateForm.Amount,
		PaymentMethod: dc.CreateForm.PaymentMethod,
		ProofType:     dc.CreateForm.ProofType,
		ProofValue:    dc.CreateForm.ProofValue,
		Notes:         dc.CreateForm.Notes,
		AutoApprove:   dc.CreateForm.AutoApprove,
	})
	if err != nil {
		dc.notifier.Error("Failed to create deposit: " + err.Error())
		return
	}

	if deposit.Status == models.DepositStatusApproved {
		dc.notifier.Success("Deposit created and approved, wallet credited")
	} else {
		dc.notifier.Success("Deposit created, awaiting review")
	}
	dc.CloseCreateModal()
	dc.List.Reload()
}

// Approve approves a pending deposit and reloads the list.
func (dc *DepositsController) Approve(depositID uint) {
	if err := dc.api.Approve(depositID); err != nil {
		dc.notifier.Error("Failed to approve deposit: " + err.Error())
		return
	}
	dc.notifier.Success("Deposit approved successfully")
	dc.List.Reload()
}

// OpenRejectModal selects a deposit for rejection.
func (dc *DepositsController) OpenRejectModal(deposit models.Deposit) {
	dc.Selected = &deposit
	dc.RejectReason = ""
	dc.ShowRejectModal = true
}

// CloseRejectModal dismisses the modal without submitting.
func (dc *DepositsController) CloseRejectModal() {
	dc.Selected = nil
	dc.RejectReason = ""
	dc.ShowRejectModal = false
}

// SubmitReject rejects the selected deposit. An empty reason blocks the
// submission; on success the modal closes and the list reloads.
func (dc *DepositsController) SubmitReject() {
	if dc.Selected == nil {
		return
	}
	if errs := validators.ValidateReason(dc.RejectReason); len(errs) > 0 {
		dc.notifier.Error(validators.FirstError(errs))
		return
	}

	if err := dc.api.Reject(dc.Selected.ID, dc.RejectReason); err != nil {
		dc.notifier.Error("Failed to reject deposit: " + err.Error())
		return
	}

	dc.notifier.Success("Deposit rejected successfully")
	dc.CloseRejectModal()
	dc.List.Reload()
}

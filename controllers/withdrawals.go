package controllers

import (
	"betadmin/models"
	"betadmin/services"
	"betadmin/validators"
)

type withdrawalAPI interface {
	Pending() ([]models.Withdrawal, error)
	List(params services.ListWithdrawalsParams) (*models.WithdrawalListResponse, error)
	Approve(withdrawalID uint, paymentReference string) error
	Reject(withdrawalID uint, reason string) error
}

// WithdrawalsController drives the Withdrawals screen: pending/all tabs and
// the approve/reject review actions. Approval records the outbound payment
// reference.
type WithdrawalsController struct {
	api      withdrawalAPI
	notifier Notifier

	List *List[models.Withdrawal]
	Tab  string

	Selected         *models.Withdrawal
	ShowApproveModal bool
	ShowRejectModal  bool
	PaymentReference string
	RejectReason     string
}

func NewWithdrawalsController(api withdrawalAPI, opts ListOptions) *WithdrawalsController {
	wc := &WithdrawalsController{api: api, Tab: TabPending, notifier: opts.Notifier}
	if wc.notifier == nil {
		wc.notifier = LogNotifier{}
		opts.Notifier = wc.notifier
	}

	wc.List = NewList(func(page, pageSize int, filters map[string]string) (Page[models.Withdrawal], error) {
		resp, err := api.List(services.ListWithdrawalsParams{
			Page:     page,
			PageSize: pageSize,
			Status:   filters["status"],
		})
		if err != nil {
			return Page[models.Withdrawal]{}, err
		}
		return Page[models.Withdrawal]{Items: resp.Withdrawals, Total: resp.Total, TotalPages: resp.TotalPages}, nil
	}, opts)
	wc.List.SetFetchAll(func(map[string]string) ([]models.Withdrawal, error) {
		return api.Pending()
	})
	wc.List.SetAllMode(true)

	return wc
}

// SetTab switches between the unpaginated pending view and the paginated
// history view.
func (wc *WithdrawalsController) SetTab(tab string) {
	wc.Tab = tab
	wc.List.SetAllMode(tab == TabPending)
}

// OpenApproveModal selects a withdrawal for approval.
func (wc *WithdrawalsController) OpenApproveModal(withdrawal models.Withdrawal) {
	wc.Selected = &withdrawal
	wc.PaymentReference = ""
	wc.ShowApproveModal = true
}

// CloseApproveModal dismisses the modal without submitting.
func (wc *WithdrawalsController) CloseApproveModal() {
	wc.Selected = nil
	wc.PaymentReference = ""
	wc.ShowApproveModal = false
}

// SubmitApprove approves the selected withdrawal with the entered payment
// reference (optional). On success the modal closes and the list reloads.
func (wc *WithdrawalsController) SubmitApprove() {
	if wc.Selected == nil {
		return
	}

	if err := wc.api.Approve(wc.Selected.ID, wc.PaymentReference); err != nil {
		wc.notifier.Error("Failed to approve withdrawal: " + err.Error())
		return
	}

	wc.notifier.Success("Withdrawal approved successfully")
	wc.CloseApproveModal()
	wc.List.Reload()
}

// OpenRejectModal selects a withdrawal for rejection.
func (wc *WithdrawalsController) OpenRejectModal(withdrawal models.Withdrawal) {
	wc.Selected = &withdrawal
	wc.RejectReason = ""
	wc.ShowRejectModal = true
}

// CloseRejectModal dismisses the modal without submitting.
func (wc *WithdrawalsController) CloseRejectModal() {
	wc.Selected = nil
	wc.RejectReason = ""
	wc.ShowRejectModal = false
}

// SubmitReject rejects the selected withdrawal. An empty reason blocks the
// submission; on success the modal closes and the list reloads.
func (wc *WithdrawalsController) SubmitReject() {
	if wc.Selected == nil {
		return
	}
	if errs := validators.ValidateReason(wc.RejectReason); len(errs) > 0 {
		wc.notifier.Error(validators.FirstError(errs))
		return
	}

	if err := wc.api.Reject(wc.Selected.ID, wc.RejectReason); err != nil {
		wc.notifier.Error("Failed to reject withdrawal: " + err.Error())
		return
	}

	wc.notifier.Success("Withdrawal rejected successfully")
	wc.CloseRejectModal()
	wc.List.Reload()
}

package api

import (
	"encoding/json"
	"net/http"

	"github.com/olumidayy/r17/internal/payments"
	"github.com/olumidayy/r17/internal/security"
)

type paymentInstructionsRequest struct {
	Accounts    []payments.Account `json:"accounts"`
	Instruction string             `json:"instruction"`
}

type paymentInstructionsResponse struct {
	Status  payments.Status `json:"status"`
	Message string          `json:"message"`
	Data    payments.Result `json:"data"`
}

// handlePaymentInstructions runs one instruction through the pipeline.
// Pipeline failures are part of the result body: a failed outcome answers
// 400, pending and successful answer 200, and 4xx error envelopes are
// reserved for requests that never reached the pipeline.
func handlePaymentInstructions(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req paymentInstructionsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			security.WriteJSONError(w, r, http.StatusBadRequest, "invalid_json")
			return
		}

		result := deps.Processor.Process(req.Instruction, req.Accounts)

		status := http.StatusOK
		if result.Status == payments.StatusFailed {
			status = http.StatusBadRequest
		}

		writeJSON(w, r, status, paymentInstructionsResponse{
			Status:  result.Status,
			Message: result.StatusReason,
			Data:    result,
		})
	}
}

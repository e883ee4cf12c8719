package handler

import (
	"encoding/json"
	"net/http"

	"github.com/boddenberg/casa-cashflow-go/internal/domain"
	"github.com/boddenberg/casa-cashflow-go/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ============================================================
// Accounts
// ============================================================

func listAccountsHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/households/{householdId}/accounts")
		defer span.End()

		accounts, err := svc.ListAccounts(ctx, chi.URLParam(r, "householdId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"accounts": accounts})
	}
}

func createAccountHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/households/{householdId}/accounts")
		defer span.End()

		var account domain.Account
		if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		account.HouseholdID = chi.URLParam(r, "householdId")

		created, err := svc.CreateAccount(ctx, &account)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func updateAccountHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/households/{householdId}/accounts/{accountId}")
		defer span.End()

		var account domain.Account
		if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		account.ID = chi.URLParam(r, "accountId")
		account.HouseholdID = chi.URLParam(r, "householdId")

		updated, err := svc.UpdateAccount(ctx, &account)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func deleteAccountHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /v1/households/{householdId}/accounts/{accountId}")
		defer span.End()

		err := svc.DeleteAccount(ctx, chi.URLParam(r, "householdId"), chi.URLParam(r, "accountId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ============================================================
// Recurring income
// ============================================================

func listRecurringIncomeHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/households/{householdId}/recurring-income")
		defer span.End()

		items, err := svc.ListRecurringIncome(ctx, chi.URLParam(r, "householdId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"recurring_income": items})
	}
}

func createRecurringIncomeHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/households/{householdId}/recurring-income")
		defer span.End()

		var item domain.RecurringIncome
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		item.HouseholdID = chi.URLParam(r, "householdId")

		created, err := svc.CreateRecurringIncome(ctx, &item)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func updateRecurringIncomeHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/households/{householdId}/recurring-income/{itemId}")
		defer span.End()

		var item domain.RecurringIncome
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		item.ID = chi.URLParam(r, "itemId")
		item.HouseholdID = chi.URLParam(r, "householdId")

		updated, err := svc.UpdateRecurringIncome(ctx, &item)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func deleteRecurringIncomeHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /v1/households/{householdId}/recurring-income/{itemId}")
		defer span.End()

		err := svc.DeleteRecurringIncome(ctx, chi.URLParam(r, "householdId"), chi.URLParam(r, "itemId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ============================================================
// Single-shot income
// ============================================================

func listSingleShotIncomeHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/households/{householdId}/single-shot-income")
		defer span.End()

		items, err := svc.ListSingleShotIncome(ctx, chi.URLParam(r, "householdId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"single_shot_income": items})
	}
}

func createSingleShotIncomeHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/households/{householdId}/single-shot-income")
		defer span.End()

		var item domain.SingleShotIncome
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		item.HouseholdID = chi.URLParam(r, "householdId")

		created, err := svc.CreateSingleShotIncome(ctx, &item)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func deleteSingleShotIncomeHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /v1/households/{householdId}/single-shot-income/{itemId}")
		defer span.End()

		err := svc.DeleteSingleShotIncome(ctx, chi.URLParam(r, "householdId"), chi.URLParam(r, "itemId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ============================================================
// Fixed expenses
// ============================================================

func listFixedExpensesHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/households/{householdId}/fixed-expenses")
		defer span.End()

		items, err := svc.ListFixedExpenses(ctx, chi.URLParam(r, "householdId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"fixed_expenses": items})
	}
}

func createFixedExpenseHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/households/{householdId}/fixed-expenses")
		defer span.End()

		var item domain.FixedExpense
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		item.HouseholdID = chi.URLParam(r, "householdId")

		created, err := svc.CreateFixedExpense(ctx, &item)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func updateFixedExpenseHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/households/{householdId}/fixed-expenses/{itemId}")
		defer span.End()

		var item domain.FixedExpense
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		item.ID = chi.URLParam(r, "itemId")
		item.HouseholdID = chi.URLParam(r, "householdId")

		updated, err := svc.UpdateFixedExpense(ctx, &item)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func deleteFixedExpenseHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /v1/households/{householdId}/fixed-expenses/{itemId}")
		defer span.End()

		err := svc.DeleteFixedExpense(ctx, chi.URLParam(r, "householdId"), chi.URLParam(r, "itemId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ============================================================
// Single-shot expenses
// ============================================================

func listSingleShotExpensesHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/households/{householdId}/single-shot-expenses")
		defer span.End()

		items, err := svc.ListSingleShotExpenses(ctx, chi.URLParam(r, "householdId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"single_shot_expenses": items})
	}
}

func createSingleShotExpenseHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/households/{householdId}/single-shot-expenses")
		defer span.End()

		var item domain.SingleShotExpense
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		item.HouseholdID = chi.URLParam(r, "householdId")

		created, err := svc.CreateSingleShotExpense(ctx, &item)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func deleteSingleShotExpenseHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /v1/households/{householdId}/single-shot-expenses/{itemId}")
		defer span.End()

		err := svc.DeleteSingleShotExpense(ctx, chi.URLParam(r, "householdId"), chi.URLParam(r, "itemId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ============================================================
// Credit cards
// ============================================================

func listCreditCardsHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/households/{householdId}/credit-cards")
		defer span.End()

		cards, err := svc.ListCreditCards(ctx, chi.URLParam(r, "householdId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"credit_cards": cards})
	}
}

func createCreditCardHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/households/{householdId}/credit-cards")
		defer span.End()

		var card domain.CreditCard
		if err := json.NewDecoder(r.Body).Decode(&card); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		card.HouseholdID = chi.URLParam(r, "householdId")

		created, err := svc.CreateCreditCard(ctx, &card)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func updateCreditCardHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/households/{householdId}/credit-cards/{cardId}")
		defer span.End()

		var card domain.CreditCard
		if err := json.NewDecoder(r.Body).Decode(&card); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		card.ID = chi.URLParam(r, "cardId")
		card.HouseholdID = chi.URLParam(r, "householdId")

		updated, err := svc.UpdateCreditCard(ctx, &card)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func deleteCreditCardHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /v1/households/{householdId}/credit-cards/{cardId}")
		defer span.End()

		err := svc.DeleteCreditCard(ctx, chi.URLParam(r, "householdId"), chi.URLParam(r, "cardId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ============================================================
// Future statements
// ============================================================

func listFutureStatementsHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/households/{householdId}/future-statements")
		defer span.End()

		statements, err := svc.ListFutureStatements(ctx, chi.URLParam(r, "householdId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"future_statements": statements})
	}
}

func createFutureStatementHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/households/{householdId}/future-statements")
		defer span.End()

		var stmt domain.FutureStatement
		if err := json.NewDecoder(r.Body).Decode(&stmt); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		stmt.HouseholdID = chi.URLParam(r, "householdId")

		created, err := svc.CreateFutureStatement(ctx, &stmt)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func deleteFutureStatementHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /v1/households/{householdId}/future-statements/{stmtId}")
		defer span.End()

		err := svc.DeleteFutureStatement(ctx, chi.URLParam(r, "householdId"), chi.URLParam(r, "stmtId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

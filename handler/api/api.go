package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"
	"github.com/pandodao/safe-ledger/core"
	"github.com/shopspring/decimal"
)

func New(
	users core.UserService,
	accounts core.AccountStore,
	ledgers core.LedgerService,
	sessions core.TokenService,
	logger *slog.Logger,
) *Server {
	return &Server{
		users:    users,
		accounts: accounts,
		ledgers:  ledgers,
		sessions: sessions,
		logger:   logger.With("server", "api"),
	}
}

type Server struct {
	users    core.UserService
	accounts core.AccountStore
	ledgers  core.LedgerService
	sessions core.TokenService
	logger   *slog.Logger
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Post("/register", s.register)
	r.Post("/login", s.login)

	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)

		r.Post("/transaction", s.transaction)
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/{account_id}", s.findAccount)
			r.Get("/{account_id}/transactions", s.listTransactions)
		})
	})

	return r
}

type registerRequest struct {
	Username string `json:"username" valid:"required,stringlength(1|64)"`
	Password string `json:"password" valid:"required,stringlength(1|72)"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.renderValidation(w, "invalid request body")
		return
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		s.renderValidation(w, err.Error())
		return
	}

	// racing registrations for one name are settled by the storage
	// unique index; exactly one wins
	user, account, err := s.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		s.renderErr(w, err)
		return
	}

	s.renderJSON(w, http.StatusCreated, map[string]any{
		"user_id":    user.ID,
		"account_id": account.ID,
	})
}

type loginRequest struct {
	Username string `json:"username" valid:"required"`
	Password string `json:"password" valid:"required"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.renderValidation(w, "invalid request body")
		return
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		s.renderValidation(w, err.Error())
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.renderErr(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, map[string]any{"token": token})
}

type transactionRequest struct {
	AccountID       string       `json:"accountId" valid:"required,uuid"`
	Amount          amountString `json:"amount" valid:"required"`
	TransactionType string       `json:"transactionType" valid:"required"`
}

// amountString carries the amount as its raw digits whether the client
// sent a JSON number or a quoted string.
type amountString string

func (a *amountString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		*a = amountString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}

	*a = amountString(n)
	return nil
}

func (s *Server) transaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.renderValidation(w, "invalid request body")
		return
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		s.renderValidation(w, err.Error())
		return
	}

	kind, err := core.ParseTransactionKind(req.TransactionType)
	if err != nil {
		s.renderErr(w, err)
		return
	}

	amount, err := decimal.NewFromString(string(req.Amount))
	if err != nil {
		s.renderErr(w, core.ErrInvalidAmount)
		return
	}

	if _, err := s.ownedAccount(r, req.AccountID); err != nil {
		s.renderErr(w, err)
		return
	}

	receipt, err := s.ledgers.Apply(r.Context(), req.AccountID, amount, kind)
	if err != nil {
		s.renderErr(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, receipt)
}

func (s *Server) findAccount(w http.ResponseWriter, r *http.Request) {
	account, err := s.ownedAccount(r, chi.URLParam(r, "account_id"))
	if err != nil {
		s.renderErr(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, account)
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	account, err := s.ownedAccount(r, chi.URLParam(r, "account_id"))
	if err != nil {
		s.renderErr(w, err)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	transactions, err := s.ledgers.ListAccount(r.Context(), account.ID, limit)
	if err != nil {
		s.renderErr(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, map[string]any{"transactions": transactions})
}

// ownedAccount loads the account and checks it belongs to the
// authenticated user.
func (s *Server) ownedAccount(r *http.Request, accountID string) (*core.Account, error) {
	account, err := s.accounts.Find(r.Context(), accountID)
	if err != nil {
		return nil, err
	}

	if account.UserID != userIDFrom(r.Context()) {
		return nil, core.ErrForbidden
	}

	return account, nil
}

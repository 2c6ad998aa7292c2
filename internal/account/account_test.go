package account

import (
	"math/rand"
	"testing"
	"time"

	"account-state-go/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type step struct {
	op     models.Operation
	amount string
}

func newTestAccount(t *testing.T, opts ...Option) (*Account, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	acct, err := New(append([]Option{WithNotifier(rec)}, opts...)...)
	require.NoError(t, err)
	return acct, rec
}

func run(t *testing.T, acct *Account, steps []step) {
	t.Helper()
	for _, s := range steps {
		var err error
		switch s.op {
		case models.OperationDeposit:
			_, err = acct.Deposit(d(s.amount))
		case models.OperationWithdraw:
			_, err = acct.Withdraw(d(s.amount))
		}
		require.NoError(t, err, "%s %s", s.op, s.amount)
	}
}

func dep(amount string) step { return step{models.OperationDeposit, amount} }
func wd(amount string) step { return step{models.OperationWithdraw, amount} }

func TestNewAccount(t *testing.T) {
	acct, rec := newTestAccount(t)

	assert.True(t, acct.Balance().Equal(d("200")), "balance = %s", acct.Balance())
	assert.Equal(t, models.StateRegular, acct.State())
	assert.NotEmpty(t, acct.Id())
	assert.Empty(t, rec.Events())
}

func TestNewAccount_WithId(t *testing.T) {
	acct, _ := newTestAccount(t, WithId("acct-1"))
	assert.Equal(t, "acct-1", acct.Id())
}

func TestNewAccount_InvalidPolicy(t *testing.T) {
	p := DefaultPolicy()
	p.GoldThreshold = d("-1")

	_, err := New(WithPolicy(p))
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestAccountTransitions(t *testing.T) {
	tests := []struct {
		name        string
		steps       []step
		wantBalance string
		wantState   models.State
	}{
		{"deposit into gold", []step{dep("1000")}, "1200", models.StateGold},
		{"gold deposit earns bonus", []step{dep("1000"), dep("100")}, "1310", models.StateGold},
		{"gold withdraw stays gold", []step{dep("1300"), wd("400")}, "1100", models.StateGold},
		{"gold withdraw to regular", []step{dep("1300"), wd("600")}, "900", models.StateRegular},
		{"gold withdraw skips regular", []step{dep("1300"), wd("1600")}, "-100", models.StateOverdrawn},
		{"regular withdraw to overdrawn", []step{wd("600")}, "-400", models.StateOverdrawn},
		{"overdrawn deposit to regular", []step{wd("400"), dep("300")}, "100", models.StateRegular},
		{"overdrawn deposit stays overdrawn", []step{wd("600"), dep("100")}, "-300", models.StateOverdrawn},
		{"overdrawn deposit never jumps to gold", []step{wd("300"), dep("2000")}, "1900", models.StateRegular},
		{"regular deposit below gold", []step{dep("799.99")}, "999.99", models.StateRegular},
		{"regular withdraw within balance", []step{wd("150")}, "50", models.StateRegular},
		{"decimal amounts", []step{dep("0.10"), wd("0.20")}, "199.9", models.StateRegular},

		// boundaries
		{"exactly gold threshold", []step{dep("800")}, "1000", models.StateGold},
		{"exactly zero from regular", []step{wd("200")}, "0", models.StateRegular},
		{"gold withdraw to exactly threshold", []step{dep("1300"), wd("500")}, "1000", models.StateGold},
		{"gold withdraw to exactly zero", []step{dep("1300"), wd("1500")}, "0", models.StateRegular},
		{"overdrawn deposit to exactly zero", []step{wd("400"), dep("200")}, "0", models.StateRegular},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acct, _ := newTestAccount(t)
			run(t, acct, tt.steps)

			assert.True(t, acct.Balance().Equal(d(tt.wantBalance)),
				"balance = %s, want %s", acct.Balance(), tt.wantBalance)
			assert.Equal(t, tt.wantState, acct.State())
		})
	}
}

func TestWithdrawWhileOverdrawnIsRefused(t *testing.T) {
	acct, rec := newTestAccount(t)
	run(t, acct, []step{wd("600")})
	require.Equal(t, models.StateOverdrawn, acct.State())

	event, err := acct.Withdraw(d("50"))
	require.NoError(t, err)

	assert.True(t, event.Refused)
	assert.False(t, event.Transitioned())
	assert.Equal(t, "In Overdrawn, cannot withdraw, balance -400", event.Message)
	assert.True(t, event.BalanceBefore.Equal(event.BalanceAfter))
	assert.True(t, acct.Balance().Equal(d("-400")))
	assert.Equal(t, models.StateOverdrawn, acct.State())
	assert.Len(t, rec.Events(), 2)
}

func TestInvalidAmountsAreRejected(t *testing.T) {
	for _, amount := range []string{"0", "-5", "-0.01"} {
		t.Run(amount, func(t *testing.T) {
			acct, rec := newTestAccount(t)

			_, err := acct.Deposit(d(amount))
			assert.ErrorIs(t, err, ErrInvalidAmount)

			_, err = acct.Withdraw(d(amount))
			assert.ErrorIs(t, err, ErrInvalidAmount)

			assert.True(t, acct.Balance().Equal(d("200")))
			assert.Equal(t, models.StateRegular, acct.State())
			assert.Empty(t, rec.Events())
		})
	}
}

func TestEventContents(t *testing.T) {
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	acct, rec := newTestAccount(t, WithId("acct-1"), WithClock(func() time.Time { return fixed }))

	event, err := acct.Deposit(d("1000"))
	require.NoError(t, err)

	assert.NotEmpty(t, event.Id)
	assert.Equal(t, "acct-1", event.AccountId)
	assert.Equal(t, models.OperationDeposit, event.Operation)
	assert.Equal(t, "In Regular, depositing 1000", event.Message)
	assert.Equal(t, models.StateRegular, event.From)
	assert.Equal(t, models.StateGold, event.To)
	assert.True(t, event.Transitioned())
	assert.True(t, event.BalanceBefore.Equal(d("200")))
	assert.True(t, event.BalanceAfter.Equal(d("1200")))
	assert.True(t, event.Bonus.IsZero())
	assert.Equal(t, fixed, event.OccurredAt)

	event, err = acct.Deposit(d("100"))
	require.NoError(t, err)
	assert.Equal(t, "In Gold, depositing 100 + 10% bonus: 10", event.Message)
	assert.True(t, event.Bonus.Equal(d("10")))

	event, err = acct.Withdraw(d("400"))
	require.NoError(t, err)
	assert.Equal(t, "In Gold, withdrawing 400 from 1310", event.Message)
	assert.Equal(t, models.StateRegular, event.To)

	assert.Len(t, rec.Events(), 3)
	assert.Len(t, rec.Transitions(), 2)
}

func TestCustomPolicy(t *testing.T) {
	p := Policy{
		InitialBalance:     d("50"),
		GoldThreshold:      d("100"),
		OverdrawnThreshold: d("-20"),
		GoldBonusRate:      d("0.5"),
	}
	acct, _ := newTestAccount(t, WithPolicy(p))

	run(t, acct, []step{wd("60")})
	assert.Equal(t, models.StateRegular, acct.State(), "-10 is above the overdrawn threshold")

	run(t, acct, []step{wd("20")})
	assert.Equal(t, models.StateOverdrawn, acct.State())

	run(t, acct, []step{dep("30"), dep("100")})
	assert.Equal(t, models.StateGold, acct.State())
	assert.True(t, acct.Balance().Equal(d("100")))

	event, err := acct.Deposit(d("10"))
	require.NoError(t, err)
	assert.Equal(t, "In Gold, depositing 10 + 50% bonus: 5", event.Message)
	assert.True(t, acct.Balance().Equal(d("115")))
}

func TestNewAccount_OpeningStateFollowsBalance(t *testing.T) {
	p := DefaultPolicy()
	p.InitialBalance = d("-5")
	acct, _ := newTestAccount(t, WithPolicy(p))
	assert.Equal(t, models.StateOverdrawn, acct.State())

	p.InitialBalance = d("5000")
	acct, _ = newTestAccount(t, WithPolicy(p))
	assert.Equal(t, models.StateGold, acct.State())
}

// reference model of the transition table, in integer cents
func referenceStep(state models.State, balance int64, op models.Operation, amount int64) (models.State, int64) {
	switch state {
	case models.StateRegular:
		if op == models.OperationDeposit {
			balance += amount
			if balance >= 100000 {
				return models.StateGold, balance
			}
			return state, balance
		}
		balance -= amount
		if balance < 0 {
			return models.StateOverdrawn, balance
		}
		return state, balance
	case models.StateGold:
		if op == models.OperationDeposit {
			return state, balance + amount + amount/10
		}
		balance -= amount
		if balance < 0 {
			return models.StateOverdrawn, balance
		}
		if balance < 100000 {
			return models.StateRegular, balance
		}
		return state, balance
	default:
		if op == models.OperationWithdraw {
			return state, balance
		}
		balance += amount
		if balance >= 0 {
			return models.StateRegular, balance
		}
		return state, balance
	}
}

func TestRandomSequencesMatchTransitionTable(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for seq := 0; seq < 200; seq++ {
		acct, _ := newTestAccount(t)
		state, cents := models.StateRegular, int64(20000)

		for i := 0; i < 50; i++ {
			op := models.OperationDeposit
			if rng.Intn(2) == 0 {
				op = models.OperationWithdraw
			}
			// multiples of 10 cents keep the 10% bonus exact in cents
			amount := int64(rng.Intn(15000)+1) * 10

			var err error
			if op == models.OperationDeposit {
				_, err = acct.Deposit(decimal.New(amount, -2))
			} else {
				_, err = acct.Withdraw(decimal.New(amount, -2))
			}
			require.NoError(t, err)

			state, cents = referenceStep(state, cents, op, amount)
			require.Equal(t, state, acct.State(), "sequence %d step %d", seq, i)
			require.True(t, acct.Balance().Equal(decimal.New(cents, -2)),
				"sequence %d step %d: balance %s, want %s", seq, i, acct.Balance(), decimal.New(cents, -2))
		}
	}
}

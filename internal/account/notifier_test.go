package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapNotifier(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	acct, err := New(WithId("acct-1"), WithNotifier(NewZapNotifier(zap.New(core))))
	require.NoError(t, err)

	_, err = acct.Deposit(d("1000"))
	require.NoError(t, err)

	entries := logs.TakeAll()
	require.Len(t, entries, 2)
	assert.Equal(t, "In Regular, depositing 1000", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "1200", entries[0].ContextMap()["balance_after"])
	assert.Equal(t, "acct-1", entries[0].ContextMap()["account_id"])

	assert.Equal(t, "Account state changed", entries[1].Message)
	assert.Equal(t, "Regular", entries[1].ContextMap()["from_state"])
	assert.Equal(t, "Gold", entries[1].ContextMap()["to_state"])

	_, err = acct.Deposit(d("100"))
	require.NoError(t, err)
	entries = logs.TakeAll()
	require.Len(t, entries, 1)
	assert.Equal(t, "10", entries[0].ContextMap()["bonus"])
}

func TestZapNotifier_RefusedWithdrawal(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	acct, err := New(WithNotifier(NewZapNotifier(zap.New(core))))
	require.NoError(t, err)

	_, err = acct.Withdraw(d("600"))
	require.NoError(t, err)
	logs.TakeAll()

	_, err = acct.Withdraw(d("1"))
	require.NoError(t, err)

	entries := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "In Overdrawn, cannot withdraw, balance -400", entries[0].Message)
}

func TestMultiNotifier(t *testing.T) {
	first, second := &Recorder{}, &Recorder{}
	acct, err := New(WithNotifier(MultiNotifier{first, nil, second}))
	require.NoError(t, err)

	_, err = acct.Deposit(d("5"))
	require.NoError(t, err)

	assert.Len(t, first.Events(), 1)
	assert.Equal(t, first.Events(), second.Events())
}

func TestNewZapNotifier_NilUsesGlobal(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	acct, err := New(WithNotifier(NewZapNotifier(nil)))
	require.NoError(t, err)
	_, err = acct.Withdraw(d("50"))
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("In Regular, withdrawing 50 from 200").Len())
}

/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package session

import (
	"context"
	"testing"

	"github.com/ecertify/ecertify/node/wallet"
	"github.com/ecertify/ecertify/pkg/cache"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const (
	acc      = "0x52908400098527886e0f7030069857d2e4169ee7"
	accSum   = "0x52908400098527886E0F7030069857D2E4169EE7"
	otherAcc = "0xde709f2102306220921060314715629080e2fb77" // already checksummed
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixture struct {
	bridge *wallet.Bridge
	roles  *MemoryRoleStore
	queue  *Queue
	holder *Holder
}

func newFixture() *fixture {
	f := &fixture{
		bridge: wallet.NewBridge(),
		roles:  NewMemoryRoleStore(),
		queue:  NewQueue(),
	}
	f.holder = NewHolder(f.bridge, f.roles, f.queue, Options{InstallURL: "https://metamask.io/download.html"})
	return f
}

func TestConnectWithoutWallet(t *testing.T) {
	f := newFixture()
	err := f.holder.Connect(context.Background())
	assert.ErrorIs(t, err, ErrWalletAbsent)
	assert.Equal(t, Session{}, f.holder.Snapshot())

	notes := f.queue.Drain()
	require.Len(t, notes, 1)
	assert.Equal(t, LevelError, notes[0].Level)
	assert.Equal(t, "MetaMask is not installed. Please install MetaMask to continue.", notes[0].Message)
	require.NotNil(t, notes[0].Action)
	assert.Equal(t, "Install MetaMask", notes[0].Action.Label)
	assert.Equal(t, "https://metamask.io/download.html", notes[0].Action.URL)
	assert.Equal(t, 5000, int(notes[0].Duration.Milliseconds()))
}

func TestConnectRejected(t *testing.T) {
	f := newFixture()
	f.bridge.StageAccounts(nil, true)
	err := f.holder.Connect(context.Background())
	assert.True(t, errors.Is(err, ErrWalletRejected))
	assert.Equal(t, Session{}, f.holder.Snapshot())

	notes := f.queue.Drain()
	require.Len(t, notes, 1)
	assert.Equal(t, "Failed to connect wallet. Please try again.", notes[0].Message)
	assert.Nil(t, notes[0].Action)
}

func TestConnectWithoutSavedRole(t *testing.T) {
	f := newFixture()
	f.bridge.StageAccounts([]string{acc}, false)
	require.NoError(t, f.holder.Connect(context.Background()))

	s := f.holder.Snapshot()
	assert.True(t, s.Connected)
	assert.Equal(t, accSum, s.Address)
	assert.Equal(t, RoleNone, s.Role)
	assert.False(t, s.Authenticated())
	assert.Empty(t, f.queue.Drain())
}

func TestConnectWithSavedRole(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.roles.Save(RoleStudent))
	f.bridge.StageAccounts([]string{acc}, false)
	require.NoError(t, f.holder.Connect(context.Background()))

	s := f.holder.Snapshot()
	assert.True(t, s.Authenticated())
	assert.Equal(t, RoleStudent, s.Role)

	notes := f.queue.Drain()
	require.Len(t, notes, 1)
	assert.Equal(t, LevelSuccess, notes[0].Level)
	assert.Equal(t, "Connected to wallet successfully!", notes[0].Message)
}

func TestSelectRoleRequiresConnection(t *testing.T) {
	f := newFixture()
	assert.ErrorIs(t, f.holder.SelectRole(RoleStudent), ErrNotConnected)
	assert.Equal(t, RoleNone, f.holder.Snapshot().Role)
	_, ok, err := f.roles.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	f.bridge.StageAccounts([]string{acc}, false)
	require.NoError(t, f.holder.Connect(context.Background()))
	assert.True(t, errors.Is(f.holder.SelectRole(Role("admin")), ErrInvalidRole))

	require.NoError(t, f.holder.SelectRole(RoleInstitute))
	s := f.holder.Snapshot()
	assert.True(t, s.Connected)
	assert.True(t, s.Authenticated())
	role, ok, err := f.roles.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, RoleInstitute, role)
}

func TestDisconnect(t *testing.T) {
	f := newFixture()
	f.bridge.StageAccounts([]string{acc}, false)
	require.NoError(t, f.holder.Connect(context.Background()))
	require.NoError(t, f.holder.SelectRole(RoleStudent))

	f.holder.Disconnect()
	assert.Equal(t, Session{}, f.holder.Snapshot())
	_, ok, err := f.roles.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	notes := f.queue.Drain()
	require.NotEmpty(t, notes)
	last := notes[len(notes)-1]
	assert.Equal(t, LevelInfo, last.Level)
	assert.Equal(t, "Disconnected from wallet.", last.Message)

	// from the empty session too, and with a failing store
	f.roles.Err = errors.New("storage unavailable")
	f.holder.Disconnect()
	assert.Equal(t, Session{}, f.holder.Snapshot())
}

func TestProbeRestoresSavedRole(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.roles.Save(RoleInstitute))
	f.bridge.Announce(wallet.Report{Present: true, IsMetaMask: true, SelectedAddress: acc})

	require.NoError(t, f.holder.Probe(context.Background()))
	s := f.holder.Snapshot()
	assert.True(t, s.Authenticated())
	assert.Equal(t, RoleInstitute, s.Role)
	assert.Equal(t, accSum, s.Address)
	assert.Empty(t, f.queue.Drain())
}

func TestProbeIgnoresOtherWallets(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.roles.Save(RoleStudent))
	f.bridge.Announce(wallet.Report{Present: true, IsMetaMask: false, SelectedAddress: acc})
	require.NoError(t, f.holder.Probe(context.Background()))
	assert.Equal(t, Session{}, f.holder.Snapshot())

	f.bridge.Announce(wallet.Report{Present: true, IsMetaMask: true})
	require.NoError(t, f.holder.Probe(context.Background()))
	assert.Equal(t, Session{}, f.holder.Snapshot())
}

func TestProbeFailures(t *testing.T) {
	f := newFixture()
	f.bridge.Announce(wallet.Report{Present: true, IsMetaMask: true, SelectedAddress: "0xnope"})
	assert.True(t, errors.Is(f.holder.Probe(context.Background()), wallet.ErrInvalidAddress))
	assert.Equal(t, Session{}, f.holder.Snapshot())

	f.bridge.Announce(wallet.Report{Present: true, IsMetaMask: true, SelectedAddress: acc})
	f.roles.Err = errors.New("storage unavailable")
	assert.Error(t, f.holder.Probe(context.Background()))
	s := f.holder.Snapshot()
	assert.True(t, s.Connected)
	assert.False(t, s.Authenticated())
	assert.Empty(t, f.queue.Drain())
}

func TestAccountsChanged(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.roles.Save(RoleStudent))
	f.bridge.StageAccounts([]string{acc}, false)
	require.NoError(t, f.holder.Connect(context.Background()))

	f.holder.Mount()
	f.holder.Mount()
	assert.Equal(t, 1, f.bridge.Listeners())

	f.bridge.PublishAccounts([]string{otherAcc})
	s := f.holder.Snapshot()
	assert.Equal(t, otherAcc, s.Address)
	assert.True(t, s.Authenticated())

	f.bridge.PublishAccounts(nil)
	assert.Equal(t, Session{}, f.holder.Snapshot())

	f.holder.Unmount()
	f.holder.Unmount()
	assert.Equal(t, 0, f.bridge.Listeners())

	f.bridge.StageAccounts([]string{acc}, false)
	f.queue.Drain()
	f.bridge.PublishAccounts([]string{acc})
	assert.Equal(t, Session{}, f.holder.Snapshot())
	assert.Empty(t, f.queue.Drain())
}

func TestReturnPath(t *testing.T) {
	f := newFixture()
	assert.Empty(t, f.holder.TakeReturnPath())
	f.holder.RememberPath("/student/dashboard")
	assert.Equal(t, "/student/dashboard", f.holder.TakeReturnPath())
	assert.Empty(t, f.holder.TakeReturnPath())
}

func TestCacheRoleStore(t *testing.T) {
	db, err := cache.NewCache(t.TempDir(), "test")
	require.NoError(t, err)
	defer db.Close()

	a := NewCacheRoleStore(db, "visitor-a")
	b := NewCacheRoleStore(db, "visitor-b")

	_, ok, err := a.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, a.Save(RoleInstitute))
	require.NoError(t, b.Save(RoleStudent))
	assert.True(t, errors.Is(a.Save(RoleNone), ErrInvalidRole))

	role, ok, err := a.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, RoleInstitute, role)

	stored, err := db.Get([]byte("e-certify-user-type:visitor-a"))
	require.NoError(t, err)
	assert.Equal(t, "institute", string(stored))

	roles, err := ListRoles(db)
	require.NoError(t, err)
	assert.Equal(t, map[string]Role{"visitor-a": RoleInstitute, "visitor-b": RoleStudent}, roles)

	require.NoError(t, a.Remove())
	require.NoError(t, a.Remove())
	_, ok, err = a.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	// a tampered value counts as no saved role
	require.NoError(t, db.Put([]byte("e-certify-user-type:visitor-b"), []byte("admin")))
	_, ok, err = b.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("student")
	require.NoError(t, err)
	assert.Equal(t, RoleStudent, r)
	_, err = ParseRole("")
	assert.True(t, errors.Is(err, ErrInvalidRole))
	assert.Equal(t, "none", RoleNone.String())
}

func TestQueueBound(t *testing.T) {
	q := NewQueue()
	for i := 0; i < maxQueued+3; i++ {
		q.Notify(Notification{Level: LevelInfo, Message: string(rune('a' + i%26))})
	}
	items := q.Drain()
	assert.Len(t, items, maxQueued)
	assert.Equal(t, "d", items[0].Message)
	assert.Equal(t, []Notification{}, q.Drain())
}

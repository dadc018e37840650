package pixels

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke

	method string
	params []any
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	t.method, t.params = operation, params
	return t.res, t.err
}

func (t *testInv) CallAndExpandIterator(contract util.Uint160, operation string, i int, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}
func (t *testInv) TraverseIterator(uuid.UUID, *result.Iterator, int) ([]stackitem.Item, error) {
	return nil, nil
}
func (t *testInv) TerminateSession(uuid.UUID) error {
	return nil
}

func halt(items ...stackitem.Item) *result.Invoke {
	return &result.Invoke{State: "HALT", Stack: items}
}

func TestReaderErrors(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("bad")
	_, err := r.OwnerOf(1)
	require.Error(t, err)
	_, err = r.GetPixel(1)
	require.Error(t, err)

	ti.err = nil
	ti.res = &result.Invoke{State: "FAULT", FaultException: "pixel id out of bounds"}
	_, err = r.OwnerOf(1_000_000)
	require.Error(t, err)
	require.ErrorIs(t, ParseFault(err.Error()), ErrOutOfBounds)

	ti.res = halt(stackitem.Make(100500))
	_, err = r.GetPixel(1)
	require.Error(t, err)

	ti.res = halt(stackitem.Make([]stackitem.Item{stackitem.Make(1)}))
	_, err = r.GetPixel(1)
	require.Error(t, err)

	ti.res = halt(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(make([]byte, 20)),
		stackitem.Make([]byte{1, 2}),
		stackitem.Make(10),
	}))
	_, err = r.GetPixel(1)
	require.Error(t, err)
}

func TestReader(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})
	owner := util.Uint160{4, 5, 6}

	ti.res = halt(stackitem.Make(owner.BytesBE()))
	h, err := r.OwnerOf(42)
	require.NoError(t, err)
	require.Equal(t, owner, h)
	require.Equal(t, "ownerOf", ti.method)
	require.Equal(t, []any{uint32(42)}, ti.params)

	ti.res = halt(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(owner.BytesBE()),
		stackitem.NewBuffer([]byte{0xaa, 0xbb, 0xcc}),
		stackitem.Make(20),
	}))
	p, err := r.GetPixel(42)
	require.NoError(t, err)
	require.Equal(t, &Pixel{Owner: owner, Colour: Colour{0xaa, 0xbb, 0xcc}, Price: big.NewInt(20)}, p)

	ti.res = halt(stackitem.Make(40))
	price, err := r.PriceOf(42)
	require.NoError(t, err)
	require.Equal(t, int64(40), price.Int64())

	ti.res = halt(stackitem.Make(owner.BytesBE()))
	h, err = r.AcceptedToken()
	require.NoError(t, err)
	require.Equal(t, owner, h)
	require.Equal(t, "acceptedToken", ti.method)

	h, err = r.Admin()
	require.NoError(t, err)
	require.Equal(t, owner, h)
	require.Equal(t, "admin", ti.method)

	ti.res = halt(stackitem.Make(2000))
	v, err := r.Version()
	require.NoError(t, err)
	require.Equal(t, int64(2000), v.Int64())
}

func TestEventsFromApplicationLog(t *testing.T) {
	owner := util.Uint160{7, 8, 9}

	_, err := PixelBoughtEventsFromApplicationLog(nil)
	require.Error(t, err)

	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{Name: "Transfer", Item: stackitem.NewArray(nil)},
				{Name: "PixelBought", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.Make(5),
					stackitem.Make(owner.BytesBE()),
					stackitem.Make([]byte{1, 2, 3}),
					stackitem.Make(10),
				})},
				{Name: "PixelUpdated", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.Make(5),
					stackitem.Make(owner.BytesBE()),
					stackitem.Make([]byte{4, 5, 6}),
				})},
			},
		}},
	}

	bought, err := PixelBoughtEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*PixelBoughtEvent{{
		ID: big.NewInt(5), Owner: owner, Colour: []byte{1, 2, 3}, Price: big.NewInt(10),
	}}, bought)

	updated, err := PixelUpdatedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*PixelUpdatedEvent{{
		ID: big.NewInt(5), Owner: owner, Colour: []byte{4, 5, 6},
	}}, updated)

	log.Executions[0].Events[1].Item = stackitem.NewArray([]stackitem.Item{stackitem.Make(5)})
	_, err = PixelBoughtEventsFromApplicationLog(log)
	require.Error(t, err)
}

type testAct struct {
	testInv

	sender util.Uint160
	script []byte
	err    error
}

func (a *testAct) Sender() util.Uint160 {
	return a.sender
}
func (a *testAct) MakeRun(script []byte) (*transaction.Transaction, error) {
	a.script = script
	return transaction.New(script, 0), a.err
}
func (a *testAct) MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error) {
	return a.MakeRun(script)
}
func (a *testAct) SendRun(script []byte) (util.Uint256, uint32, error) {
	a.script = script
	return util.Uint256{1}, 100, a.err
}

func TestMarket(t *testing.T) {
	ta := &testAct{sender: util.Uint160{1}}
	m := NewMarket(ta, util.Uint160{2}, util.Uint160{3})

	h, vub, err := m.Buy(util.Uint160{4}, 7, Colour{1, 2, 3}, big.NewInt(10))
	require.NoError(t, err)
	require.Equal(t, util.Uint256{1}, h)
	require.Equal(t, uint32(100), vub)

	data, err := NewBuy(util.Uint160{4}, 7, Colour{1, 2, 3}, big.NewInt(10)).Bytes()
	require.NoError(t, err)
	require.Contains(t, string(ta.script), string(data))
	require.Contains(t, string(ta.script), "transfer")

	_, err = m.SendUnsigned(NewUpdate(util.Uint160{4}, 7, Colour{3, 2, 1}, big.NewInt(10)))
	require.NoError(t, err)
	data, err = NewUpdate(util.Uint160{4}, 7, Colour{3, 2, 1}, big.NewInt(10)).Bytes()
	require.NoError(t, err)
	require.Contains(t, string(ta.script), string(data))

	_, _, err = m.Update(util.Uint160{4}, 1_000_000, Colour{}, big.NewInt(10))
	require.Error(t, err)

	ta.err = errors.New("bad")
	_, _, err = m.Buy(util.Uint160{4}, 7, Colour{1, 2, 3}, big.NewInt(10))
	require.Error(t, err)
}

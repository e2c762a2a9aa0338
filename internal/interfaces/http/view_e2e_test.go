package http_test

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storemanage/internal/application/storemanage"
	"github.com/jhoicas/storemanage/internal/infrastructure/restclient"
)

type recordingNotifier struct {
	ok   []string
	errs []string
}

func (n *recordingNotifier) Success(msg string) { n.ok = append(n.ok, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errs = append(n.errs, msg) }

// Vista de gestión contra la API real escuchando en un puerto local.
func TestVistaGestion_ContraAPI(t *testing.T) {
	app := newTestAPI(t)
	storeID, stockA, stockB := seed(t, app)
	manager := tokenForRole(t, "manager")
	resp := call(t, app, http.MethodPost, "/api/stores/"+storeID+"/stocks/"+stockA, manager, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	ctx := context.Background()
	client := restclient.New("http://"+ln.Addr().String(), 5*time.Second, nil)
	_, err = client.Login(ctx, adminEmail, adminPassword)
	require.NoError(t, err)

	n := &recordingNotifier{}
	view := storemanage.NewView(client, client, n, nil)

	require.NoError(t, view.Initialize(ctx, storeID))
	st := view.State()
	require.NotNil(t, st.Store)
	assert.Equal(t, "Centro", st.Store.Name)
	require.Len(t, st.Stocks, 1)
	assert.Equal(t, stockA, st.Stocks[0].ID)
	require.Len(t, st.Available, 1)
	assert.Equal(t, stockB, st.Available[0].ID)

	require.NoError(t, view.AddStock(ctx, stockB))
	st = view.State()
	assert.Len(t, st.Stocks, 2)
	assert.Empty(t, st.Available)

	require.NoError(t, view.RemoveStock(ctx, stockA))
	st = view.State()
	require.Len(t, st.Stocks, 1)
	assert.Equal(t, stockB, st.Stocks[0].ID)
	require.Len(t, st.Available, 1)
	assert.Equal(t, stockA, st.Available[0].ID)

	err = view.AddStock(ctx, stockB)
	require.Error(t, err)
	assert.Equal(t, []string{storemanage.MsgStockAdded, storemanage.MsgStockRemoved}, n.ok)
	assert.Equal(t, []string{"el stock ya está asociado a la tienda"}, n.errs)

	require.Error(t, view.Initialize(ctx, "no-existe"))
	assert.Equal(t, "tienda no encontrada", n.errs[len(n.errs)-1])
}

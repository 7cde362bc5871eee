package ucsm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUCS serves canned XML API responses keyed by the request's root
// element name.
func fakeUCS(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		for method, resp := range responses {
			if strings.HasPrefix(string(body), "<"+method) {
				fmt.Fprint(w, resp)
				return
			}
		}
		fmt.Fprint(w, `<error errorCode="999" errorDescr="unexpected request"/>`)
	}))
}

func testClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return NewClient(u.Host, Config{NoTLS: true})
}

func TestLogin(t *testing.T) {
	srv := fakeUCS(t, map[string]string{
		"aaaLogin": `<aaaLogin cookie="" response="yes" outCookie="1702000000/abc" outVersion="4.2(3d)"/>`,
	})
	defer srv.Close()

	sess, err := testClient(t, srv).Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "4.2(3d)", sess.Version())
	assert.Equal(t, "1702000000/abc", sess.cookie)
}

func TestLoginRejected(t *testing.T) {
	srv := fakeUCS(t, map[string]string{
		"aaaLogin": `<aaaLogin cookie="" response="yes" errorCode="551" errorDescr="Authentication failed"/>`,
	})
	defer srv.Close()

	_, err := testClient(t, srv).Login(context.Background(), "admin", "wrong")
	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Contains(t, connErr.Error(), "Authentication failed")
}

func TestLoginUnreachable(t *testing.T) {
	c := NewClient("127.0.0.1:1", Config{NoTLS: true})
	_, err := c.Login(context.Background(), "admin", "secret")
	var connErr *ConnectionError
	assert.ErrorAs(t, err, &connErr)
}

func TestQuery(t *testing.T) {
	srv := fakeUCS(t, map[string]string{
		"aaaLogin": `<aaaLogin outCookie="c" outVersion="4.2(3d)"/>`,
		"configResolveClass": `<configResolveClass cookie="c" response="yes">
			<outConfigs>
				<equipmentChassis dn="sys/chassis-1" id="1" model="UCSB-5108-AC2" operState="operable"/>
				<equipmentChassis dn="sys/chassis-2" id="2" model="UCSB-5108-AC2" operState="operable"/>
			</outConfigs>
		</configResolveClass>`,
	})
	defer srv.Close()

	sess, err := testClient(t, srv).Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	records, err := sess.Query(context.Background(), "equipmentChassis")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "sys/chassis-1", records[0].DN())
	assert.Equal(t, "UCSB-5108-AC2", records[0].Field("model"))
	assert.Equal(t, "equipmentChassis", records[1].Field("_class"))
	assert.Equal(t, "2", records[1].Field("id"))
}

func TestQueryEmptyClass(t *testing.T) {
	srv := fakeUCS(t, map[string]string{
		"aaaLogin":           `<aaaLogin outCookie="c"/>`,
		"configResolveClass": `<configResolveClass cookie="c" response="yes"><outConfigs></outConfigs></configResolveClass>`,
	})
	defer srv.Close()

	sess, err := testClient(t, srv).Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	records, err := sess.Query(context.Background(), "fabricVsan")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestQueryFault(t *testing.T) {
	srv := fakeUCS(t, map[string]string{
		"aaaLogin":           `<aaaLogin outCookie="c"/>`,
		"configResolveClass": `<configResolveClass cookie="c" errorCode="552" errorDescr="session expired"/>`,
	})
	defer srv.Close()

	sess, err := testClient(t, srv).Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	_, err = sess.Query(context.Background(), "computeBlade")
	var qErr *QueryError
	require.ErrorAs(t, err, &qErr)
	assert.Equal(t, "computeBlade", qErr.Kind)
	assert.Contains(t, qErr.Error(), "session expired")
}

func TestQueryChildren(t *testing.T) {
	srv := fakeUCS(t, map[string]string{
		"aaaLogin": `<aaaLogin outCookie="c"/>`,
		"configResolveChildren": `<configResolveChildren cookie="c" response="yes">
			<outConfigs>
				<fabricEthLanPcEp dn="fabric/lan/A/pc-1/ep-slot-1-port-17" slotId="1" portId="17"/>
			</outConfigs>
		</configResolveChildren>`,
	})
	defer srv.Close()

	sess, err := testClient(t, srv).Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	records, err := sess.QueryChildren(context.Background(), "fabric/lan/A/pc-1", "fabricEthLanPcEp")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "17", records[0].Field("portId"))
}

func TestLogout(t *testing.T) {
	srv := fakeUCS(t, map[string]string{
		"aaaLogin":  `<aaaLogin outCookie="c"/>`,
		"aaaLogout": `<aaaLogout outStatus="success"/>`,
	})
	defer srv.Close()

	sess, err := testClient(t, srv).Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.NoError(t, sess.Logout(context.Background()))
}

func TestErrorUnwrapping(t *testing.T) {
	cause := errors.New("boom")
	qe := &QueryError{Endpoint: "ucs1", Kind: "computeBlade", Err: cause}
	assert.ErrorIs(t, qe, cause)

	ce := &ConnectionError{Endpoint: "ucs1", Err: cause}
	assert.ErrorIs(t, ce, cause)
}

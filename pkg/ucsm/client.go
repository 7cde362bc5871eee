// Copyright 2025 The ucs-config-report Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ucsm speaks the UCS Manager XML API: session login/logout and
// class-resolve queries returning flat attribute-bag records.
package ucsm

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 60 * time.Second

// Config controls transport behavior of a Client.
type Config struct {
	// Timeout bounds each HTTP exchange with the controller. Zero means
	// the default of 60s.
	Timeout time.Duration
	// InsecureSkipVerify disables TLS certificate verification. UCS
	// domains commonly run with self-signed certificates.
	InsecureSkipVerify bool
	// NoTLS uses plain HTTP. Only for lab endpoints and tests.
	NoTLS bool
}

// Client issues UCS XML API requests against one management endpoint.
// It is safe to create one Client per target; a Client owns no session
// state of its own.
type Client struct {
	endpoint   string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given endpoint (host or host:port).
func NewClient(endpoint string, cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	scheme := "https"
	if cfg.NoTLS {
		scheme = "http"
	}
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify},
	}
	return &Client{
		endpoint: endpoint,
		baseURL:  fmt.Sprintf("%s://%s/nuova", scheme, endpoint),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Endpoint returns the address this client talks to.
func (c *Client) Endpoint() string { return c.endpoint }

// Session is an authenticated UCS Manager session. One session is owned by
// one report run at a time; sessions are not shared.
type Session struct {
	client  *Client
	cookie  string
	version string
}

// Version returns the UCS Manager version reported at login.
func (s *Session) Version() string { return s.version }

// Endpoint returns the address of the controller this session talks to.
func (s *Session) Endpoint() string { return s.client.endpoint }

// Login opens a session. Failures of any kind (transport, TLS, rejected
// credentials) surface as *ConnectionError.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	req := struct {
		XMLName  xml.Name `xml:"aaaLogin"`
		Name     string   `xml:"inName,attr"`
		Password string   `xml:"inPassword,attr"`
	}{Name: username, Password: password}

	attrs, err := c.roundTrip(ctx, req)
	if err != nil {
		return nil, &ConnectionError{Endpoint: c.endpoint, Err: err}
	}
	cookie := attrs["outCookie"]
	if cookie == "" {
		return nil, &ConnectionError{Endpoint: c.endpoint, Err: fmt.Errorf("login response carried no session cookie")}
	}
	return &Session{client: c, cookie: cookie, version: attrs["outVersion"]}, nil
}

// Logout closes the session. Errors are returned but are not fatal to a
// completed report; callers typically log them.
func (s *Session) Logout(ctx context.Context) error {
	req := struct {
		XMLName xml.Name `xml:"aaaLogout"`
		Cookie  string   `xml:"inCookie,attr"`
	}{Cookie: s.cookie}

	if _, err := s.client.roundTrip(ctx, req); err != nil {
		return fmt.Errorf("logout from %s: %w", s.client.endpoint, err)
	}
	return nil
}

// Query resolves every instance of a managed object class. Records come
// back in the controller's native order. Failures surface as *QueryError.
func (s *Session) Query(ctx context.Context, kind string) ([]Record, error) {
	req := struct {
		XMLName      xml.Name `xml:"configResolveClass"`
		Cookie       string   `xml:"cookie,attr"`
		ClassID      string   `xml:"classId,attr"`
		Hierarchical string   `xml:"inHierarchical,attr"`
	}{Cookie: s.cookie, ClassID: kind, Hierarchical: "false"}

	records, err := s.client.roundTripRecords(ctx, req)
	if err != nil {
		return nil, &QueryError{Endpoint: s.client.endpoint, Kind: kind, Err: err}
	}
	return records, nil
}

// QueryChildren resolves children of one managed object, optionally
// restricted to a class. Used by catalog sections that chain a secondary
// query per primary record.
func (s *Session) QueryChildren(ctx context.Context, dn, kind string) ([]Record, error) {
	req := struct {
		XMLName      xml.Name `xml:"configResolveChildren"`
		Cookie       string   `xml:"cookie,attr"`
		Dn           string   `xml:"inDn,attr"`
		ClassID      string   `xml:"classId,attr,omitempty"`
		Hierarchical string   `xml:"inHierarchical,attr"`
	}{Cookie: s.cookie, Dn: dn, ClassID: kind, Hierarchical: "false"}

	records, err := s.client.roundTripRecords(ctx, req)
	if err != nil {
		return nil, &QueryError{Endpoint: s.client.endpoint, Kind: kind, Err: fmt.Errorf("children of %s: %w", dn, err)}
	}
	return records, nil
}

// roundTrip posts one API request and returns the attributes of the
// response's root element, after checking for an embedded API fault.
func (c *Client) roundTrip(ctx context.Context, reqBody any) (map[string]string, error) {
	attrs, _, err := c.exchange(ctx, reqBody, false)
	return attrs, err
}

// roundTripRecords posts one API request and returns the records nested
// under the response's outConfigs element.
func (c *Client) roundTripRecords(ctx context.Context, reqBody any) ([]Record, error) {
	_, records, err := c.exchange(ctx, reqBody, true)
	return records, err
}

func (c *Client) exchange(ctx context.Context, reqBody any, wantRecords bool) (map[string]string, []Record, error) {
	payload, err := xml.Marshal(reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, nil, err
	}
	httpReq.Header.Set("Content-Type", "application/xml")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("http status %d", resp.StatusCode)
	}

	return parseResponse(resp.Body, wantRecords)
}

// parseResponse walks the response document. The root element's attributes
// always come back; when wantRecords is set, every element directly under
// outConfigs becomes one Record (element attributes are the record fields,
// plus the element name under the "_class" key).
func parseResponse(r io.Reader, wantRecords bool) (map[string]string, []Record, error) {
	dec := xml.NewDecoder(r)

	rootAttrs := map[string]string{}
	var records []Record
	depth := 0
	inConfigs := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("decode response: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			depth++
			switch {
			case depth == 1:
				for _, a := range el.Attr {
					rootAttrs[a.Name.Local] = a.Value
				}
			case depth == 2 && el.Name.Local == "outConfigs":
				inConfigs = true
			case depth == 3 && inConfigs && wantRecords:
				rec := make(Record, len(el.Attr)+1)
				rec["_class"] = el.Name.Local
				for _, a := range el.Attr {
					rec[a.Name.Local] = a.Value
				}
				records = append(records, rec)
			}
		case xml.EndElement:
			if depth == 2 && el.Name.Local == "outConfigs" {
				inConfigs = false
			}
			depth--
		}
	}

	if code := rootAttrs["errorCode"]; code != "" {
		return nil, nil, &apiError{Code: code, Descr: rootAttrs["errorDescr"]}
	}
	return rootAttrs, records, nil
}

package storage

import (
	"bytes"
	"crypto/md5"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// OracleClient talks to Oracle Object Storage through
// a pre-authenticated request URL (a bucket-wide PAR ending with /o/),
// so no SDK or keys are needed.
type OracleClient struct {
	par    string
	client *http.Client
}

var (
	ErrNoAccessURL = errors.New("no pre-authenticated request url")
	ErrChecksum    = errors.New("md5 mismatch")
)

func NewOracleClient(accessURL string) (*OracleClient, error) {
	if accessURL == "" {
		return nil, ErrNoAccessURL
	}
	return &OracleClient{par: accessURL, client: &http.Client{Timeout: 10 * time.Second}}, nil
}

// Save uploads the file and checks that the storage got the same bytes.
func (s *OracleClient) Save(name string, localPath string) error {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return err
	}
	rq, err := http.NewRequest(http.MethodPut, s.par+name, bytes.NewReader(data))
	if err != nil {
		return err
	}
	rq.Header.Set("Content-Type", "application/vnd.chess-pgn")

	resp, err := s.client.Do(rq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("oracle: %v %v", rq.Method, resp.Status)
	}
	return verify(data, resp.Header.Get("Opc-Content-Md5"))
}

// verify compares the base64 md5 of the data with the one the storage reports.
func verify(data []byte, remote string) error {
	sum := md5.Sum(data)
	if local := base64.StdEncoding.EncodeToString(sum[:]); local != remote {
		return fmt.Errorf("%w: %v != %v", ErrChecksum, local, remote)
	}
	return nil
}

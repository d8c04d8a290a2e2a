/*
Copyright 2026 The Crossdata Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cassandra

import (
	"context"

	gocql "github.com/apache/cassandra-gocql-driver/v2"

	"github.com/vikasyadav15/crossdata/go/vt/catalog/cqlcatalog"
)

type gocqlSession struct {
	session *gocql.Session
}

func newGocqlSession(settings Settings, keyspace string) (Session, error) {
	cluster := gocql.NewCluster(settings.Hosts...)
	cluster.Port = settings.Port
	cluster.Keyspace = keyspace
	cluster.Consistency = settings.Consistency
	cluster.Timeout = settings.Timeout
	cluster.ConnectTimeout = settings.Timeout
	if settings.Credentials.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: settings.Credentials.Username,
			Password: settings.Credentials.Password,
		}
	}
	session, err := cluster.CreateSession()
	if err != nil {
		return nil, err
	}
	return &gocqlSession{session: session}, nil
}

func (s *gocqlSession) Exec(ctx context.Context, stmt string) error {
	return s.session.Query(stmt).ExecContext(ctx)
}

func (s *gocqlSession) MapScan(ctx context.Context, stmt string) ([]string, []map[string]any, error) {
	iter := s.session.Query(stmt).IterContext(ctx)
	var columns []string
	for _, col := range iter.Columns() {
		columns = append(columns, col.Name)
	}
	var rows []map[string]any
	for {
		row := make(map[string]any, len(columns))
		if !iter.MapScan(row) {
			break
		}
		rows = append(rows, row)
	}
	if err := iter.Close(); err != nil {
		return nil, nil, err
	}
	return columns, rows, nil
}

func (s *gocqlSession) Querier() cqlcatalog.Querier {
	return cqlcatalog.SessionQuerier(s.session)
}

func (s *gocqlSession) Close() {
	s.session.Close()
}

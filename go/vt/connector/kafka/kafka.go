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

// Package kafka implements a streaming-source connector reading Kafka
// topics. It only provides a query engine: querying a cluster polls the
// subscribed topics.
package kafka

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"github.com/vikasyadav15/crossdata/go/vt/connector"
	"github.com/vikasyadav15/crossdata/go/vt/log"
	"github.com/vikasyadav15/crossdata/go/vt/names"
	"github.com/vikasyadav15/crossdata/go/vt/vterrors"
)

const (
	// Name is the name of the connector.
	Name names.ConnectorName = "KafkaConnector"
	// DataStore is the data store served by the connector.
	DataStore names.DataStoreName = "Kafka"

	PropBootstrapServers = "bootstrap.servers"
	PropGroupID          = "group.id"
	// PropTopics is a comma separated list of topics.
	PropTopics         = "topics"
	PropMaxPollRecords = "max.poll.records"
	PropPollTimeout    = "poll.timeout"

	defaultMaxPollRecords = 100
	defaultPollTimeout    = 100 * time.Millisecond

	version = "0.1.0"
)

// Result columns of a poll.
var resultColumns = []string{"topic", "partition", "offset", "key", "value"}

// Consumer is the part of *kafka.Consumer used by the connector.
type Consumer interface {
	SubscribeTopics(topics []string, rebalanceCb kafka.RebalanceCb) error
	ReadMessage(timeout time.Duration) (*kafka.Message, error)
	Close() error
}

// ConsumerFactory creates a consumer from its configuration.
type ConsumerFactory func(conf *kafka.ConfigMap) (Consumer, error)

type subscription struct {
	// consumers are not safe for concurrent polls
	mu             sync.Mutex
	consumer       Consumer
	topics         []string
	maxPollRecords int
	pollTimeout    time.Duration
}

// Connector is the Kafka connector.
type Connector struct {
	newConsumer ConsumerFactory
	sessions    connector.Sessions[*subscription]
}

var (
	_ connector.Connector   = (*Connector)(nil)
	_ connector.QueryEngine = (*Connector)(nil)
)

// New returns a connector creating confluent-kafka-go consumers.
func New() *Connector {
	return NewWithFactory(func(conf *kafka.ConfigMap) (Consumer, error) {
		return kafka.NewConsumer(conf)
	})
}

// NewWithFactory returns a connector creating consumers through factory.
func NewWithFactory(factory ConsumerFactory) *Connector {
	return &Connector{newConsumer: factory}
}

// Descriptor implements connector.Connector.
func (c *Connector) Descriptor() connector.Descriptor {
	return connector.Descriptor{
		Name:               Name,
		Version:            version,
		DataStores:         []names.DataStoreName{DataStore},
		RequiredProperties: []string{PropBootstrapServers, PropGroupID, PropTopics},
		OptionalProperties: []string{PropMaxPollRecords, PropPollTimeout},
	}
}

// ConfigMap builds the consumer configuration of a cluster. Connector
// options other than the ones interpreted by the connector are passed to
// the consumer as is.
func ConfigMap(creds connector.Credentials, cfg connector.ClusterConfig) *kafka.ConfigMap {
	conf := kafka.ConfigMap{
		"bootstrap.servers":  cfg.ClusterOptions[PropBootstrapServers],
		"group.id":           cfg.ClusterOptions[PropGroupID],
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": true,
	}
	for key, value := range cfg.ConnectorOptions {
		switch key {
		case PropMaxPollRecords, PropPollTimeout, PropTopics:
			continue
		}
		conf[key] = value
	}
	if creds.Username != "" {
		conf["security.protocol"] = "SASL_SSL"
		conf["sasl.mechanisms"] = "PLAIN"
		conf["sasl.username"] = creds.Username
		conf["sasl.password"] = creds.Password
	}
	return &conf
}

func option(cfg connector.ClusterConfig, key string) string {
	if v, ok := cfg.ConnectorOptions[key]; ok {
		return v
	}
	return cfg.ClusterOptions[key]
}

// Connect implements connector.Connector.
func (c *Connector) Connect(ctx context.Context, creds connector.Credentials, cfg connector.ClusterConfig) error {
	defer connector.RecordConnect(Name, cfg.Name, time.Now())

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := connector.RequireProperties(cfg.Name, cfg.ClusterOptions, PropBootstrapServers, PropGroupID, PropTopics); err != nil {
		return err
	}
	sub := &subscription{maxPollRecords: defaultMaxPollRecords, pollTimeout: defaultPollTimeout}
	for _, topic := range strings.Split(cfg.ClusterOptions[PropTopics], ",") {
		if topic = strings.TrimSpace(topic); topic != "" {
			sub.topics = append(sub.topics, topic)
		}
	}
	if v := option(cfg, PropMaxPollRecords); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return connector.NewConnectionError(cfg.Name, nil, "invalid %s %q", PropMaxPollRecords, v)
		}
		sub.maxPollRecords = n
	}
	if v := option(cfg, PropPollTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return connector.NewConnectionError(cfg.Name, err, "invalid %s %q", PropPollTimeout, v)
		}
		sub.pollTimeout = d
	}

	consumer, err := c.newConsumer(ConfigMap(creds, cfg))
	if err != nil {
		return connector.NewConnectionError(cfg.Name, err, "failed to create kafka consumer")
	}
	if err := consumer.SubscribeTopics(sub.topics, nil); err != nil {
		_ = consumer.Close()
		return connector.NewConnectionError(cfg.Name, err, "failed to subscribe to topics %v", sub.topics)
	}
	sub.consumer = consumer
	log.Infof("Kafka consumer for %s subscribed to topics: %v", cfg.Name, sub.topics)

	if previous, replaced := c.sessions.Put(cfg.Name, sub); replaced {
		previous.close(cfg.Name)
	}
	return nil
}

func (s *subscription) close(cluster names.ClusterName) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.consumer.Close(); err != nil {
		log.Warningf("Closing kafka consumer of %s: %v", cluster, err)
	}
}

// IsConnected implements connector.Connector.
func (c *Connector) IsConnected(cluster names.ClusterName) bool {
	_, ok := c.sessions.Get(cluster)
	return ok
}

// Close implements connector.Connector.
func (c *Connector) Close(cluster names.ClusterName) error {
	sub, ok := c.sessions.Take(cluster)
	if !ok {
		return connector.NotConnected(cluster)
	}
	sub.close(cluster)
	log.Infof("Kafka consumer closed. Disconnected from cluster: %s", cluster)
	return nil
}

// Shutdown implements connector.Connector.
func (c *Connector) Shutdown() error {
	log.Infof("Shutting down %s", Name)
	for cluster, sub := range c.sessions.TakeAll() {
		sub.close(cluster)
	}
	return nil
}

// StorageEngine implements connector.Connector. Topics are read-only.
func (c *Connector) StorageEngine() (connector.StorageEngine, error) {
	return nil, connector.ErrUnsupported
}

// MetadataEngine implements connector.Connector.
func (c *Connector) MetadataEngine() (connector.MetadataEngine, error) {
	return nil, connector.ErrUnsupported
}

// QueryEngine implements connector.Connector.
func (c *Connector) QueryEngine() (connector.QueryEngine, error) {
	return c, nil
}

// Query implements connector.QueryEngine. It polls up to max.poll.records
// messages and stops early when a poll times out or ctx is done. keyspace
// and query are ignored: the subscription decides what is read.
func (c *Connector) Query(ctx context.Context, cluster names.ClusterName, keyspace, query string) (*connector.Result, error) {
	sub, ok := c.sessions.Get(cluster)
	if !ok {
		return nil, connector.NotConnected(cluster)
	}
	sub.mu.Lock()
	defer sub.mu.Unlock()

	result := &connector.Result{Columns: resultColumns}
	for len(result.Rows) < sub.maxPollRecords {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		msg, err := sub.consumer.ReadMessage(sub.pollTimeout)
		if err != nil {
			var kerr kafka.Error
			if errors.As(err, &kerr) && kerr.Code() == kafka.ErrTimedOut {
				break
			}
			return result, vterrors.Wrapf(connector.NewConnectionError(cluster, err, "read failed"), "polling %v", sub.topics)
		}
		result.Rows = append(result.Rows, row(msg))
	}
	return result, nil
}

func row(msg *kafka.Message) map[string]any {
	r := map[string]any{
		"partition": msg.TopicPartition.Partition,
		"offset":    int64(msg.TopicPartition.Offset),
		"key":       string(msg.Key),
		"value":     string(msg.Value),
	}
	if msg.TopicPartition.Topic != nil {
		r["topic"] = *msg.TopicPartition.Topic
	}
	return r
}

package main

import "time"

var opts struct {
	Pool struct {
		ID string `long:"id" env:"ID" required:"true" description:"batch pool id"`
	} `group:"pool" namespace:"pool" env-namespace:"AZ_BATCH_POOL"`

	Batch struct {
		AccountURL  string        `long:"account-url" env:"ACCOUNT_URL" required:"true" description:"batch account endpoint"`
		AccountName string        `long:"account-name" env:"ACCOUNT_NAME" description:"batch account name"`
		AccountKey  string        `long:"account-key" env:"ACCOUNT_KEY" description:"batch account shared key (base64)"`
		APIVersion  string        `long:"api-version" env:"API_VERSION" default:"2023-05-01.17.0" description:"batch service api version"`
		Timeout     time.Duration `long:"timeout" env:"TIMEOUT" default:"30s" description:"batch request timeout"`
	} `group:"batch" namespace:"batch" env-namespace:"AZ_BATCH"`

	Election struct {
		Strategy     string `long:"strategy" env:"STRATEGY" default:"numeric-suffix" choice:"numeric-suffix" choice:"lexicographic" choice:"rendezvous" description:"master selection strategy"`
		ListAttempts int    `long:"list-attempts" env:"LIST_ATTEMPTS" default:"3" description:"node listings to take before accepting an inconsistent one"`
	} `group:"election" namespace:"election" env-namespace:"SPARKPOOL_ELECTION"`

	Verbose bool `long:"verbose" env:"SPARKPOOL_VERBOSE" description:"verbose mode"`

	Start startCommand `command:"start" description:"elect the master and start the spark daemon of this node"`

	Status statusCommand `command:"status" description:"print the pool state and the elected master"`
}

type startCommand struct {
	Node struct {
		ID string `long:"id" env:"ID" required:"true" description:"id of this node"`
	} `group:"node" namespace:"node" env-namespace:"AZ_BATCH_NODE"`

	Wait struct {
		Interval       time.Duration `long:"interval" env:"INTERVAL" default:"5s" description:"pool state polling interval"`
		MasterInterval time.Duration `long:"master-interval" env:"MASTER_INTERVAL" default:"10s" description:"master state polling interval"`
		MaxAttempts    int           `long:"max-attempts" env:"MAX_ATTEMPTS" default:"0" description:"max polls per wait, 0 is unbounded"`
		Timeout        time.Duration `long:"timeout" env:"TIMEOUT" default:"0s" description:"max duration of a wait, 0 is unbounded"`
	} `group:"wait" namespace:"wait" env-namespace:"SPARKPOOL_WAIT"`

	Spark struct {
		Profile    string `long:"profile" env:"PROFILE" description:"path to the launch profile (yaml)"`
		MasterPort int    `long:"master-port" env:"MASTER_PORT" description:"spark master port, overrides the profile"`
	} `group:"spark" namespace:"spark" env-namespace:"SPARKPOOL_SPARK"`

	Notebook struct {
		Enabled bool `long:"enabled" env:"SPARKPOOL_NOTEBOOK" description:"start jupyter with a pyspark kernel on the master"`
		Port    int  `long:"port" env:"JUPYTER_PORT" description:"jupyter port, overrides the profile"`
	} `group:"notebook" namespace:"notebook"`
}

type statusCommand struct {
	Timeout time.Duration `long:"timeout" default:"30s" description:"overall timeout"`
}

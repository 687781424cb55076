package sshutil

import "time"

// Probe dials the host, runs a no-op command, and reports the round-trip
// latency. Used by the doctor command to verify each configured host is
// reachable and authenticated before monitoring starts.
func Probe(host string, timeout time.Duration) (time.Duration, error) {
	start := time.Now()

	client, err := Dial(host, timeout)
	if err != nil {
		return 0, err
	}
	defer client.Close()

	if _, err := client.Run("true"); err != nil {
		return 0, err
	}

	return time.Since(start), nil
}

// SPDX-License-Identifier: MIT
// Package protocol simulates multipartite (GHZ) entanglement distribution
// over a quantum network and measures the entanglement rate.
//
// A run consists of reps independent trials. Each trial resets the link
// state and then, for at most timesteps steps, advances the links with
// entangle.Engine and asks a routing.Strategy whether the users can now
// share a GHZ state. The first successful timestep is the trial's time;
// a trial that runs out of steps records NoSuccess and the run goes on.
//
// Protocols:
//
//	SP   shortest-path greedy routing on a precomputed star (routing.BuildStar)
//	MPG  shortest-path greedy routing on the whole topology
//	MPC  connected component + Steiner tree fusion on the whole topology
//
// After all trials, each node's UsageCount holds how often it performed
// swapping or fusion in a successful trial and UsageFraction is that count
// divided by reps. Result carries the rate, per-trial times and the mean
// number of links consumed per trial.
//
// Trials run concurrently (WithWorkers) on private clones of the topology;
// trial i always draws from entangle.TrialSource(seed, i), so a seed fully
// determines the Result whatever the worker count.
package protocol

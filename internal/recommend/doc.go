// ML-Restaurant-Recommendations - Hybrid Restaurant Recommendation Engine
// Copyright 2026 Ayush Saxena (iamAyushSaxena)
// SPDX-License-Identifier: MIT
// https://github.com/iamAyushSaxena/ML-Restaurant-Recommendations

// Package recommend implements the hybrid recommendation engine:
// collaborative filtering over a user-restaurant interaction matrix,
// content matching against user profiles, contextual modulation by
// time, weather, and distance, cold-start strategies for new users,
// and human-readable explanations for every pick.
//
// The Engine is the package entry point. Fit it once with a Dataset,
// then serve Recommend, Onboard, Popular, and Explain concurrently.
package recommend

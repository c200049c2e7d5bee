// Package gbce computes the metrics of the Global Beverage Corporation
// Exchange over an in-memory set of stocks and trades.
//
// The core functionalities include:
//   - Stock Catalog: the listed stocks (common or preferred), looked up by symbol.
//   - Trade Journal: the trades recorded on the exchange, validated before
//     they are appended.
//   - Metric Engine: dividend yield, price-earnings ratio, volume weighted
//     stock price over a trailing window and the All Share Index (the
//     geometric mean of every traded stock price).
//
// Every input is checked against the business rules before any arithmetic
// runs. A broken rule is reported as a *BusinessError with a stable message.
// Results are decimals rounded half up to a configured precision.
//
// This package serves as the foundational logic for the `sms` command-line
// tool.
package gbce

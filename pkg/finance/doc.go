// Package finance provides discounted-cash-flow utilities (NPV, IRR) and the
// plant economics model built on them: CAPEX, OPEX, revenue, financial
// summary and price scenarios for a hard carbon plant.
//
// The NPV/IRR functions are domain-agnostic and usable standalone.
package finance

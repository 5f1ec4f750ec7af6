// Package domain contains the value types shared by the validator: the card
// issuer classification and the CVC length each issuer expects. The types are
// pure and carry no UI or infrastructure concerns.
package domain

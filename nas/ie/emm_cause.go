// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

package ie

import "fmt"

// EMM cause values, TS 24.301 9.9.3.9.
const (
	CauseIMSIUnknownInHSS                      uint8 = 2
	CauseIllegalUE                             uint8 = 3
	CauseIMEINotAccepted                       uint8 = 5
	CauseIllegalME                             uint8 = 6
	CauseEPSServicesNotAllowed                 uint8 = 7
	CauseEPSAndNonEPSServicesNotAllowed        uint8 = 8
	CauseUEIdentityCannotBeDerived             uint8 = 9
	CauseImplicitlyDetached                    uint8 = 10
	CausePLMNNotAllowed                        uint8 = 11
	CauseTrackingAreaNotAllowed                uint8 = 12
	CauseRoamingNotAllowedInTrackingArea       uint8 = 13
	CauseEPSServicesNotAllowedInPLMN           uint8 = 14
	CauseNoSuitableCellsInTrackingArea         uint8 = 15
	CauseMSCTemporarilyNotReachable            uint8 = 16
	CauseNetworkFailure                        uint8 = 17
	CauseCSDomainNotAvailable                  uint8 = 18
	CauseESMFailure                            uint8 = 19
	CauseMACFailure                            uint8 = 20
	CauseSynchFailure                          uint8 = 21
	CauseCongestion                            uint8 = 22
	CauseUESecurityCapabilitiesMismatch        uint8 = 23
	CauseSecurityModeRejected                  uint8 = 24
	CauseNotAuthorizedForCSG                   uint8 = 25
	CauseNonEPSAuthenticationUnacceptable      uint8 = 26
	CauseRedirectionTo5GCNRequired             uint8 = 31
	CauseServiceOptionNotAuthorizedInPLMN      uint8 = 35
	CauseCSServiceTemporarilyNotAvailable      uint8 = 39
	CauseNoEPSBearerContextActivated           uint8 = 40
	CauseSevereNetworkFailure                  uint8 = 42
	CausePLMNNotAllowedAtUELocation            uint8 = 78
	CauseSemanticallyIncorrectMessage          uint8 = 95
	CauseInvalidMandatoryInformation           uint8 = 96
	CauseMessageTypeNonExistent                uint8 = 97
	CauseMessageTypeNotCompatibleWithState     uint8 = 98
	CauseIENonExistent                         uint8 = 99
	CauseConditionalIEError                    uint8 = 100
	CauseMessageNotCompatibleWithProtocolState uint8 = 101
	CauseProtocolErrorUnspecified              uint8 = 111
)

var causeNames = map[uint8]string{
	CauseIMSIUnknownInHSS:                      "IMSI unknown in HSS",
	CauseIllegalUE:                             "Illegal UE",
	CauseIMEINotAccepted:                       "IMEI not accepted",
	CauseIllegalME:                             "Illegal ME",
	CauseEPSServicesNotAllowed:                 "EPS services not allowed",
	CauseEPSAndNonEPSServicesNotAllowed:        "EPS services and non-EPS services not allowed",
	CauseUEIdentityCannotBeDerived:             "UE identity cannot be derived by the network",
	CauseImplicitlyDetached:                    "Implicitly detached",
	CausePLMNNotAllowed:                        "PLMN not allowed",
	CauseTrackingAreaNotAllowed:                "Tracking area not allowed",
	CauseRoamingNotAllowedInTrackingArea:       "Roaming not allowed in this tracking area",
	CauseEPSServicesNotAllowedInPLMN:           "EPS services not allowed in this PLMN",
	CauseNoSuitableCellsInTrackingArea:         "No suitable cells in tracking area",
	CauseMSCTemporarilyNotReachable:            "MSC temporarily not reachable",
	CauseNetworkFailure:                        "Network failure",
	CauseCSDomainNotAvailable:                  "CS domain not available",
	CauseESMFailure:                            "ESM failure",
	CauseMACFailure:                            "MAC failure",
	CauseSynchFailure:                          "Synch failure",
	CauseCongestion:                            "Congestion",
	CauseUESecurityCapabilitiesMismatch:        "UE security capabilities mismatch",
	CauseSecurityModeRejected:                  "Security mode rejected, unspecified",
	CauseNotAuthorizedForCSG:                   "Not authorized for this CSG",
	CauseNonEPSAuthenticationUnacceptable:      "Non-EPS authentication unacceptable",
	CauseRedirectionTo5GCNRequired:             "Redirection to 5GCN required",
	CauseServiceOptionNotAuthorizedInPLMN:      "Requested service option not authorized in this PLMN",
	CauseCSServiceTemporarilyNotAvailable:      "CS service temporarily not available",
	CauseNoEPSBearerContextActivated:           "No EPS bearer context activated",
	CauseSevereNetworkFailure:                  "Severe network failure",
	CausePLMNNotAllowedAtUELocation:            "PLMN not allowed to operate at the present UE location",
	CauseSemanticallyIncorrectMessage:          "Semantically incorrect message",
	CauseInvalidMandatoryInformation:           "Invalid mandatory information",
	CauseMessageTypeNonExistent:                "Message type non-existent or not implemented",
	CauseMessageTypeNotCompatibleWithState:     "Message type not compatible with the protocol state",
	CauseIENonExistent:                         "Information element non-existent or not implemented",
	CauseConditionalIEError:                    "Conditional IE error",
	CauseMessageNotCompatibleWithProtocolState: "Message not compatible with the protocol state",
	CauseProtocolErrorUnspecified:              "Protocol error, unspecified",
}

// EMMCause is the EMM cause IE, a single octet.
type EMMCause uint8

// NewEMMCause creates a new EMMCause.
func NewEMMCause(cause uint8) *EMMCause {
	c := EMMCause(cause)
	return &c
}

func (c *EMMCause) MarshalTo(b []byte, iei uint8) (int, error) {
	return marshalOctet("EMM cause", b, iei, uint8(*c))
}

func (c *EMMCause) Unmarshal(b []byte, iei uint8) (int, error) {
	v, n, err := unmarshalOctet("EMM cause", b, iei)
	if err != nil {
		return 0, err
	}

	*c = EMMCause(v)

	return n, nil
}

func (c *EMMCause) MarshalLen(iei uint8) int {
	return tagLen(iei) + 1
}

func (c *EMMCause) MinLen(iei uint8) int {
	return tagLen(iei) + 1
}

func (c EMMCause) String() string {
	if name, ok := causeNames[uint8(c)]; ok {
		return name
	}

	return fmt.Sprintf("EMM cause %d", uint8(c))
}
